package types

// ConsoleInterface defines the interface for console output.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayCostShareBars(shares []CategoryCost)
}

// StatusHandle is an interface to update a status message.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle is an interface to update a progress bar.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface defines the interface to create and render tables.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// CategoryCost represents the cost accumulated by one meter category,
// used for the cost-share bar panel.
type CategoryCost struct {
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
}
