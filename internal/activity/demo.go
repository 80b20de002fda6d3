package activity

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briangreenhill/extrack/internal/observability"
)

const programTitle = "Exercise Tracking Program"

// Samples builds one activity of each type, all on the given date,
// in the order Running, Cycling, Swimming.
func Samples(date time.Time) ([]Activity, error) {
	running, err := NewRunning(date, 30, 3.0)
	if err != nil {
		return nil, fmt.Errorf("building running sample: %w", err)
	}

	cycling, err := NewCycling(date, 45, 15.0)
	if err != nil {
		return nil, fmt.Errorf("building cycling sample: %w", err)
	}

	swimming, err := NewSwimming(date, 20, 10)
	if err != nil {
		return nil, fmt.Errorf("building swimming sample: %w", err)
	}

	return []Activity{running, cycling, swimming}, nil
}

// WriteSummaries prints the program header and then one summary per line.
func WriteSummaries(w io.Writer, activities []Activity) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", programTitle, strings.Repeat("-", 24)); err != nil {
		return err
	}

	for _, a := range activities {
		if _, err := fmt.Fprintln(w, a.Summary()); err != nil {
			return err
		}
		observability.RecordSummaryRendered(a.Kind().String())
	}

	return nil
}
