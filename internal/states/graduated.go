package states

import (
	"fmt"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// Graduated-bracket jurisdictions, 2025 tables. Amounts are cents. States
// whose joint brackets are not simply double the single widths carry
// explicit mfj rows; states taxing every status on one table carry mfj rows
// identical to single.
type row = taxmath.RateRow

func init() {
	registerTable(&ruleTable{
		config: Config{Code: "AL", Name: "Alabama", HasIncomeTax: true, HasStandardDeduction: true, HasPersonalExemption: true},
		rates: &schedule{single: []row{
			{Max: 50_000, Rate: 0.02},
			{Max: 300_000, Rate: 0.04},
			{Rate: 0.05},
		}},
		standardDeduction:  deductionBySingle(300_000),
		personalExemption:  150_000,
		dependentExemption: 100_000,
	})

	registerTable(&ruleTable{
		config: Config{Code: "AR", Name: "Arkansas", HasIncomeTax: true, HasStandardDeduction: true},
		rates: &schedule{single: []row{
			{Max: 450_000, Rate: 0.02},
			{Rate: 0.039},
		}},
		standardDeduction: deductionBySingle(241_000),
	})

	californiaSingle := []row{
		{Max: 1_075_600, Rate: 0.01},
		{Max: 2_549_900, Rate: 0.02},
		{Max: 4_024_500, Rate: 0.04},
		{Max: 5_586_600, Rate: 0.06},
		{Max: 7_060_600, Rate: 0.08},
		{Max: 36_065_900, Rate: 0.093},
		{Max: 43_278_700, Rate: 0.103},
		{Max: 72_131_400, Rate: 0.113},
		{Rate: 0.123},
	}
	registerTable(&ruleTable{
		config: Config{Code: "CA", Name: "California", HasIncomeTax: true, HasStandardDeduction: true, HasPersonalExemption: true},
		rates: &schedule{
			single: californiaSingle,
			hoh: []row{
				{Max: 2_152_700, Rate: 0.01},
				{Max: 5_100_000, Rate: 0.02},
				{Max: 6_574_400, Rate: 0.04},
				{Max: 8_136_400, Rate: 0.06},
				{Max: 9_610_700, Rate: 0.08},
				{Max: 49_049_300, Rate: 0.093},
				{Max: 58_859_300, Rate: 0.103},
				{Max: 98_098_700, Rate: 0.113},
				{Rate: 0.123},
			},
		},
		standardDeduction:  deductionBySingle(554_000),
		personalExemption:  14_900,
		dependentExemption: 46_100,
		exemptionAsCredit:  true,
	})

	registerTable(&ruleTable{
		config: Config{Code: "CT", Name: "Connecticut", HasIncomeTax: true, HasPersonalExemption: true, EITCPercent: 0.40},
		rates: &schedule{single: []row{
			{Max: 1_000_000, Rate: 0.02},
			{Max: 5_000_000, Rate: 0.045},
			{Max: 10_000_000, Rate: 0.055},
			{Max: 20_000_000, Rate: 0.06},
			{Max: 25_000_000, Rate: 0.065},
			{Max: 50_000_000, Rate: 0.069},
			{Rate: 0.0699},
		}},
		personalExemption: 1_500_000,
	})

	dcRows := []row{
		{Max: 1_000_000, Rate: 0.04},
		{Max: 4_000_000, Rate: 0.06},
		{Max: 6_000_000, Rate: 0.065},
		{Max: 25_000_000, Rate: 0.085},
		{Max: 50_000_000, Rate: 0.0925},
		{Max: 100_000_000, Rate: 0.0975},
		{Rate: 0.1075},
	}
	registerTable(&ruleTable{
		config:            Config{Code: "DC", Name: "District of Columbia", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.70},
		rates:             &schedule{single: dcRows, mfj: dcRows},
		standardDeduction: federalParityDeduction,
	})

	delawareRows := []row{
		{Max: 200_000, Rate: 0},
		{Max: 500_000, Rate: 0.022},
		{Max: 1_000_000, Rate: 0.039},
		{Max: 2_000_000, Rate: 0.048},
		{Max: 2_500_000, Rate: 0.052},
		{Max: 6_000_000, Rate: 0.0555},
		{Rate: 0.066},
	}
	registerTable(&ruleTable{
		config:            Config{Code: "DE", Name: "Delaware", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.045},
		rates:             &schedule{single: delawareRows, mfj: delawareRows},
		standardDeduction: deductionBySingle(325_000),
	})

	registerTable(&ruleTable{
		config: Config{Code: "HI", Name: "Hawaii", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.40},
		rates: &schedule{single: []row{
			{Max: 960_000, Rate: 0.014},
			{Max: 1_440_000, Rate: 0.032},
			{Max: 1_920_000, Rate: 0.055},
			{Max: 2_400_000, Rate: 0.064},
			{Max: 3_600_000, Rate: 0.068},
			{Max: 4_800_000, Rate: 0.072},
			{Max: 12_500_000, Rate: 0.076},
			{Max: 17_500_000, Rate: 0.079},
			{Max: 22_500_000, Rate: 0.0825},
			{Max: 27_500_000, Rate: 0.09},
			{Max: 32_500_000, Rate: 0.10},
			{Rate: 0.11},
		}},
		standardDeduction: deductionBySingle(440_000),
	})

	registerTable(&ruleTable{
		config: Config{Code: "KS", Name: "Kansas", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.17},
		rates: &schedule{single: []row{
			{Max: 2_300_000, Rate: 0.052},
			{Rate: 0.0558},
		}},
		standardDeduction: deductionBySingle(360_500),
	})

	registerTable(&ruleTable{
		config: Config{Code: "MD", Name: "Maryland", HasIncomeTax: true, HasLocalTax: true, HasStandardDeduction: true, HasPersonalExemption: true, EITCPercent: 0.45},
		rates: &schedule{
			single: []row{
				{Max: 100_000, Rate: 0.02},
				{Max: 200_000, Rate: 0.03},
				{Max: 300_000, Rate: 0.04},
				{Max: 10_000_000, Rate: 0.0475},
				{Max: 12_500_000, Rate: 0.05},
				{Max: 15_000_000, Rate: 0.0525},
				{Max: 25_000_000, Rate: 0.055},
				{Rate: 0.0575},
			},
			mfj: []row{
				{Max: 100_000, Rate: 0.02},
				{Max: 200_000, Rate: 0.03},
				{Max: 300_000, Rate: 0.04},
				{Max: 15_000_000, Rate: 0.0475},
				{Max: 17_500_000, Rate: 0.05},
				{Max: 22_500_000, Rate: 0.0525},
				{Max: 30_000_000, Rate: 0.055},
				{Rate: 0.0575},
			},
		},
		standardDeduction:  deductionBySingle(270_000),
		personalExemption:  320_000,
		dependentExemption: 320_000,
		extraTax:           marylandCountyTax,
	})

	registerTable(&ruleTable{
		config: Config{Code: "ME", Name: "Maine", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.25},
		rates: &schedule{single: []row{
			{Max: 2_605_000, Rate: 0.058},
			{Max: 6_160_000, Rate: 0.0675},
			{Rate: 0.0715},
		}},
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config: Config{Code: "MN", Name: "Minnesota", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.33},
		rates: &schedule{
			single: []row{
				{Max: 3_257_000, Rate: 0.0535},
				{Max: 10_699_000, Rate: 0.068},
				{Max: 19_863_000, Rate: 0.0785},
				{Rate: 0.0985},
			},
			mfj: []row{
				{Max: 4_762_000, Rate: 0.0535},
				{Max: 18_918_000, Rate: 0.068},
				{Max: 33_041_000, Rate: 0.0785},
				{Rate: 0.0985},
			},
		},
		standardDeduction: deductionBySingle(1_495_000),
	})

	missouriRows := []row{
		{Max: 254_600, Rate: 0.02},
		{Max: 381_900, Rate: 0.025},
		{Max: 509_200, Rate: 0.03},
		{Max: 636_500, Rate: 0.035},
		{Max: 763_800, Rate: 0.04},
		{Max: 891_100, Rate: 0.045},
		{Rate: 0.047},
	}
	registerTable(&ruleTable{
		config:            Config{Code: "MO", Name: "Missouri", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.10},
		rates:             &schedule{single: missouriRows, mfj: missouriRows},
		standardDeduction: federalParityDeduction,
	})

	mississippiRows := []row{
		{Max: 1_000_000, Rate: 0},
		{Rate: 0.044},
	}
	registerTable(&ruleTable{
		config:            Config{Code: "MS", Name: "Mississippi", HasIncomeTax: true, HasStandardDeduction: true},
		rates:             &schedule{single: mississippiRows, mfj: mississippiRows},
		standardDeduction: deductionBySingle(230_000),
	})

	registerTable(&ruleTable{
		config: Config{Code: "MT", Name: "Montana", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.10},
		rates: &schedule{single: []row{
			{Max: 2_110_000, Rate: 0.047},
			{Rate: 0.059},
		}},
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config: Config{Code: "ND", Name: "North Dakota", HasIncomeTax: true, HasStandardDeduction: true},
		rates: &schedule{single: []row{
			{Max: 4_847_500, Rate: 0},
			{Max: 24_482_500, Rate: 0.0195},
			{Rate: 0.025},
		}},
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config: Config{Code: "NE", Name: "Nebraska", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.10},
		rates: &schedule{single: []row{
			{Max: 403_000, Rate: 0.0246},
			{Max: 2_412_000, Rate: 0.0351},
			{Max: 3_887_000, Rate: 0.0501},
			{Rate: 0.052},
		}},
		standardDeduction: deductionBySingle(835_000),
	})

	registerTable(&ruleTable{
		config: Config{Code: "NJ", Name: "New Jersey", HasIncomeTax: true, HasPersonalExemption: true, EITCPercent: 0.40},
		rates: &schedule{
			single: []row{
				{Max: 2_000_000, Rate: 0.014},
				{Max: 3_500_000, Rate: 0.0175},
				{Max: 4_000_000, Rate: 0.035},
				{Max: 7_500_000, Rate: 0.05525},
				{Max: 50_000_000, Rate: 0.0637},
				{Max: 100_000_000, Rate: 0.0897},
				{Rate: 0.1075},
			},
			mfj: []row{
				{Max: 2_000_000, Rate: 0.014},
				{Max: 5_000_000, Rate: 0.0175},
				{Max: 7_000_000, Rate: 0.0245},
				{Max: 8_000_000, Rate: 0.035},
				{Max: 15_000_000, Rate: 0.05525},
				{Max: 50_000_000, Rate: 0.0637},
				{Max: 100_000_000, Rate: 0.0897},
				{Rate: 0.1075},
			},
		},
		personalExemption:  100_000,
		dependentExemption: 150_000,
	})

	registerTable(&ruleTable{
		config: Config{Code: "NM", Name: "New Mexico", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.25},
		rates: &schedule{single: []row{
			{Max: 550_000, Rate: 0.015},
			{Max: 1_650_000, Rate: 0.032},
			{Max: 3_350_000, Rate: 0.043},
			{Max: 6_650_000, Rate: 0.047},
			{Max: 21_000_000, Rate: 0.049},
			{Rate: 0.059},
		}},
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config: Config{Code: "NY", Name: "New York", HasIncomeTax: true, HasLocalTax: true, HasStandardDeduction: true, EITCPercent: 0.30},
		rates: &schedule{
			single: []row{
				{Max: 850_000, Rate: 0.04},
				{Max: 1_170_000, Rate: 0.045},
				{Max: 1_390_000, Rate: 0.0525},
				{Max: 8_065_000, Rate: 0.055},
				{Max: 21_540_000, Rate: 0.06},
				{Max: 107_755_000, Rate: 0.0685},
				{Max: 500_000_000, Rate: 0.0965},
				{Max: 2_500_000_000, Rate: 0.103},
				{Rate: 0.109},
			},
			mfj: []row{
				{Max: 1_715_000, Rate: 0.04},
				{Max: 2_360_000, Rate: 0.045},
				{Max: 2_790_000, Rate: 0.0525},
				{Max: 16_155_000, Rate: 0.055},
				{Max: 32_320_000, Rate: 0.06},
				{Max: 215_535_000, Rate: 0.0685},
				{Max: 500_000_000, Rate: 0.0965},
				{Max: 2_500_000_000, Rate: 0.103},
				{Rate: 0.109},
			},
		},
		standardDeduction: map[types.FilingStatus]int64{
			types.Single:          800_000,
			types.MarriedJointly:  1_605_000,
			types.MarriedSeparate: 800_000,
			types.HeadOfHousehold: 1_110_000,
		},
		extraTax: newYorkCityTax,
	})

	ohioRows := []row{
		{Max: 2_605_000, Rate: 0},
		{Max: 10_000_000, Rate: 0.0275},
		{Rate: 0.035},
	}
	registerTable(&ruleTable{
		config:             Config{Code: "OH", Name: "Ohio", HasIncomeTax: true, HasPersonalExemption: true, EITCPercent: 0.30},
		rates:              &schedule{single: ohioRows, mfj: ohioRows},
		personalExemption:  240_000,
		dependentExemption: 240_000,
	})

	registerTable(&ruleTable{
		config: Config{Code: "OK", Name: "Oklahoma", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.05},
		rates: &schedule{single: []row{
			{Max: 100_000, Rate: 0.0025},
			{Max: 250_000, Rate: 0.0075},
			{Max: 375_000, Rate: 0.0175},
			{Max: 490_000, Rate: 0.0275},
			{Max: 720_000, Rate: 0.0375},
			{Rate: 0.0475},
		}},
		standardDeduction: deductionBySingle(635_000),
	})

	registerTable(&ruleTable{
		config: Config{Code: "OR", Name: "Oregon", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.09},
		rates: &schedule{single: []row{
			{Max: 440_000, Rate: 0.0475},
			{Max: 1_105_000, Rate: 0.0675},
			{Max: 12_500_000, Rate: 0.0875},
			{Rate: 0.099},
		}},
		standardDeduction: deductionBySingle(283_500),
	})

	rhodeIslandRows := []row{
		{Max: 7_990_000, Rate: 0.0375},
		{Max: 18_165_000, Rate: 0.0475},
		{Rate: 0.0599},
	}
	registerTable(&ruleTable{
		config:            Config{Code: "RI", Name: "Rhode Island", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.16},
		rates:             &schedule{single: rhodeIslandRows, mfj: rhodeIslandRows},
		standardDeduction: deductionBySingle(1_090_000),
	})

	southCarolinaRows := []row{
		{Max: 356_000, Rate: 0},
		{Max: 1_783_000, Rate: 0.03},
		{Rate: 0.062},
	}
	registerTable(&ruleTable{
		config:            Config{Code: "SC", Name: "South Carolina", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 1.25},
		rates:             &schedule{single: southCarolinaRows, mfj: southCarolinaRows},
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config: Config{Code: "VT", Name: "Vermont", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.38},
		rates: &schedule{single: []row{
			{Max: 4_790_000, Rate: 0.0335},
			{Max: 11_600_000, Rate: 0.066},
			{Max: 24_200_000, Rate: 0.076},
			{Rate: 0.0875},
		}},
		standardDeduction: deductionBySingle(740_000),
	})

	virginiaRows := []row{
		{Max: 300_000, Rate: 0.02},
		{Max: 500_000, Rate: 0.03},
		{Max: 1_700_000, Rate: 0.05},
		{Rate: 0.0575},
	}
	registerTable(&ruleTable{
		config: Config{Code: "VA", Name: "Virginia", HasIncomeTax: true, HasStandardDeduction: true, HasPersonalExemption: true, EITCPercent: 0.20},
		rates:  &schedule{single: virginiaRows, mfj: virginiaRows},
		standardDeduction: map[types.FilingStatus]int64{
			types.Single:          850_000,
			types.MarriedJointly:  1_700_000,
			types.MarriedSeparate: 850_000,
			types.HeadOfHousehold: 850_000,
		},
		personalExemption:  93_000,
		dependentExemption: 93_000,
	})

	registerTable(&ruleTable{
		config: Config{Code: "WI", Name: "Wisconsin", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.11},
		rates: &schedule{
			single: []row{
				{Max: 1_432_000, Rate: 0.035},
				{Max: 2_864_000, Rate: 0.044},
				{Max: 31_531_000, Rate: 0.053},
				{Rate: 0.0765},
			},
			mfj: []row{
				{Max: 1_909_000, Rate: 0.035},
				{Max: 3_819_000, Rate: 0.044},
				{Max: 42_042_000, Rate: 0.053},
				{Rate: 0.0765},
			},
		},
		standardDeduction: map[types.FilingStatus]int64{
			types.Single:          1_323_000,
			types.MarriedJointly:  2_449_000,
			types.MarriedSeparate: 1_163_000,
			types.HeadOfHousehold: 1_323_000,
		},
	})

	registerTable(&ruleTable{
		config: Config{Code: "WV", Name: "West Virginia", HasIncomeTax: true},
		rates: &schedule{single: []row{
			{Max: 1_000_000, Rate: 0.0222},
			{Max: 2_500_000, Rate: 0.0296},
			{Max: 4_000_000, Rate: 0.0333},
			{Max: 6_000_000, Rate: 0.0444},
			{Rate: 0.0482},
		}},
	})
}

// marylandCountyTax applies the resident county's rate from the
// state-specific bag, defaulting to the statewide average when absent. Every
// Maryland county levies a local income tax.
func marylandCountyTax(in *types.StateTaxInput, res *types.StateResult, _ int64) (surtax, local int64) {
	rate, ok := countyRate(in, "county_rate")
	if !ok {
		rate = 0.032
	}
	res.Notes = append(res.Notes, fmt.Sprintf("county income tax at %.2f%%", rate*100))
	return 0, money.MulRate(res.StateTaxableIncome, rate)
}

// newYorkCityTax adds the city's own graduated tax for residents who flag
// themselves in the state-specific bag.
func newYorkCityTax(in *types.StateTaxInput, res *types.StateResult, _ int64) (surtax, local int64) {
	if in.StateSpecific["nyc_resident"] != "true" {
		return 0, 0
	}
	city := taxmath.ConvertToFullBrackets([]row{
		{Max: 1_200_000, Rate: 0.03078},
		{Max: 2_500_000, Rate: 0.03762},
		{Max: 5_000_000, Rate: 0.03819},
		{Rate: 0.03876},
	})
	res.Notes = append(res.Notes, "New York City resident tax included")
	return 0, taxmath.TaxFromBrackets(res.StateTaxableIncome, city)
}
