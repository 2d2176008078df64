package checkout

import "fmt"

// ProgressUpdate represents a progress event during [Processor.Complete].
type ProgressUpdate struct {
	Phase   Phase  // Checkout phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Checkout phase enumeration
type Phase int

const (
	Validate Phase = iota
	Process
	Record
	Done
)

func (p Phase) String() string {
	switch p {
	case Validate:
		return "validate"
	case Process:
		return "process"
	case Record:
		return "record"
	case Done:
		return "done"
	default:
		return ""
	}
}

func validateUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: Validate, Step: 1, Total: 1, Message: "Checking order details..."}
}

func processUpdate() ProgressUpdate {
	return ProgressUpdate{Phase: Process, Step: 1, Total: 1, Message: "Processing payment..."}
}

func recordUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Record,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Adding %s to your library", step, total, title),
	}
}

func doneUpdate(number string) ProgressUpdate {
	return ProgressUpdate{Phase: Done, Step: 1, Total: 1, Message: fmt.Sprintf("Order %s confirmed", number)}
}

// sendUpdate delivers update without blocking. A nil channel drops it.
func sendUpdate(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}

	select {
	case progress <- update:
	default:
	}
}
