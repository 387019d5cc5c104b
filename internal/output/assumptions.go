package output

// DefaultAssumptions lists the modeling assumptions rendered in detailed
// outputs when a comparison does not carry its own set.
var DefaultAssumptions = []string{
	"General inflation: 7.0% annually",
	"Healthcare inflation: 11.0% annually",
	"Education inflation: 9.0% annually",
	"Expected portfolio return: 12.0% annually",
	"Safe withdrawal rate: 5.0% of corpus",
	"Drawdown projection capped at 50 years",
}
