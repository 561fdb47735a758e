package metrics

// Status classifies a metric value against its target band.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
	StatusNeutral Status = "neutral"
)

// warningZoneFraction of the band width on each side of a progress-with-status
// range is downgraded from good to warning.
const warningZoneFraction = 0.1

// Classify maps a value and its range to a status and a progress percentage
// in [0,100]. Three policies:
//
//   - no progress: good inside [min,max], danger outside; percentage is
//     100 or 0, no warning tier.
//   - progress-only: always neutral, percentage is the linear position in
//     [min,max] (clamped after interpolation, so overshoot pins at 100).
//   - progress with status: below min is danger with the value mapped into
//     the lower half of the bar; above max is danger approaching 100 from
//     below; inside the range it's a linear position, downgraded to warning
//     within 10% of either bound.
//
// Pure function.
func Classify(value float64, r Range) (Status, float64) {
	var status Status
	var pct float64

	switch {
	case !r.ShowProgress:
		if value >= r.Min && value <= r.Max {
			status, pct = StatusGood, 100
		} else {
			status, pct = StatusDanger, 0
		}

	case r.ProgressOnly:
		status = StatusNeutral
		pct = interpolate(value, r)

	default:
		switch {
		case value < r.Min:
			status = StatusDanger
			if r.Min != 0 {
				pct = value / r.Min * 50
			}
		case value > r.Max:
			status = StatusDanger
			if r.Max != 0 {
				pct = 100 - (value-r.Max)/r.Max*50
			}
		default:
			status = StatusGood
			pct = interpolate(value, r)
			warning := (r.Max - r.Min) * warningZoneFraction
			if value-r.Min < warning || r.Max-value < warning {
				status = StatusWarning
			}
		}
	}

	return status, clampPct(pct)
}

func interpolate(value float64, r Range) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (value - r.Min) / (r.Max - r.Min) * 100
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
