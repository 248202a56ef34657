package tax

import "math"

// WithholdingBrackets is the loonheffing schedule: 37.10% up to 68,508 and 49.50% above.
var WithholdingBrackets = Schedule{
	{From: 0, UpTo: 68508, Rate: 0.3710},
	{From: 68508, UpTo: math.Inf(1), Rate: 0.4950},
}

// LaborCreditSchedule is the arbeidskorting: phase-in, two build-up tiers, phase-out, then zero.
// The phase-in rate is 4.581 per unit of income, not 4.581%, so the credit drops from
// about 46,305 to 463 at 10,108.
var LaborCreditSchedule = Schedule{
	{From: 0, UpTo: 10108, Base: 0, Rate: 4.581},
	{From: 10108, UpTo: 21835, Base: 463, Rate: 0.28771},
	{From: 21835, UpTo: 35652, Base: 3837, Rate: 0.02663},
	{From: 35652, UpTo: 105736, Base: 4205, Rate: -0.06},
}

// GeneralCreditSchedule is the algemene heffingskorting: flat, phase-out, then zero.
var GeneralCreditSchedule = Schedule{
	{From: 0, UpTo: 21043, Base: 2837, Rate: 0},
	{From: 21043, UpTo: 68507, Base: 2837, Rate: -0.05977},
}

// Employer-side national insurance premiums (volksverzekeringen).
const (
	PremiumBaseCap = 34712
	PremiumRateAOW = 0.179
	PremiumRateANW = 0.001
	PremiumRateWLZ = 0.0965
)
