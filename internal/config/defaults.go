package config

const (
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultMinPlausibleYear = 1900
)

// Default returns a Config populated with repository defaults. Most checks
// are on; the noisy ones (month, year, creative_commons) and the checks
// needing extra inputs (credits) are opt-in.
func Default() Config {
	return Config{
		Checks: Checks{
			ASIN:          true,
			CDG:           true,
			CzechDates:    true,
			CzechSpelling: true,
			Deposito:      true,
			GreekLicense:  true,
			HTML:          true,
			ISRC:          true,
			LabelCode:     true,
			LabelName:     true,
			Labels:        true,
			MasteringSID:  true,
			Matrix:        true,
			MouldSID:      true,
			PKD:           true,
			Plants:        true,
			ReportAll:     true,
			RightsSociety: true,
			SPARS:         true,
			Tracklisting:  true,
		},
		Policy: Policy{
			MinPlausibleYear: defaultMinPlausibleYear,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
