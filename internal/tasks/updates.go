package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	QueuePosters Phase = iota
	SavePoster
	FailPoster
	PostersDone
)

func (p Phase) String() string {
	switch p {
	case QueuePosters:
		return "queue_posters"
	case SavePoster:
		return "save_poster"
	case FailPoster:
		return "fail_poster"
	case PostersDone:
		return "posters_done"
	default:
		return ""
	}
}

func queueUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueuePosters,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Downloading %d posters...", total),
	}
}

func savedUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SavePoster,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Saved poster for %s", step, total, title),
	}
}

func failedUpdate(step, total int, title string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FailPoster,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Failed poster for %s: %v", step, total, title, err),
	}
}

func doneUpdate(saved, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PostersDone,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Saved %d of %d posters", saved, total),
	}
}

// sendProgress sends a progress update without blocking. A nil channel drops it.
func sendProgress(ch chan<- ProgressUpdate, update ProgressUpdate) {
	if ch == nil {
		return
	}
	select {
	case ch <- update:
	default:
	}
}
