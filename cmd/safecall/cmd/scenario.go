package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/safecall/pkg/rop"
	"github.com/ib-77/safecall/pkg/rop/async"
	"github.com/ib-77/safecall/pkg/rop/solo"
)

// Scenario describes one operation. Error and Panic are pointers so that an
// empty string still means "fail without a message".
type Scenario struct {
	Name  string        `yaml:"name"`
	Value any           `yaml:"value"`
	Error *string       `yaml:"error"`
	Panic *string       `yaml:"panic"`
	Delay time.Duration `yaml:"delay"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Row is the printed form of one outcome.
type Row struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

var ErrNoScenarios = errors.New("no scenarios defined")

func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var f scenarioFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return f.Scenarios, nil
}

// Operation turns the scenario into work for safe.Call. A positive timeout
// bounds the delay.
func (s Scenario) Operation(timeout time.Duration) rop.Operation[any] {
	return func(ctx context.Context) (any, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		if s.Delay > 0 {
			select {
			case <-time.After(s.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if s.Panic != nil {
			panic(*s.Panic)
		}
		if s.Error != nil {
			return nil, errors.New(*s.Error)
		}
		return s.Value, nil
	}
}

func RunScenarios(ctx context.Context, scenarios []Scenario, timeout time.Duration) []Row {
	ops := make([]rop.Operation[any], len(scenarios))
	for i, s := range scenarios {
		ops[i] = s.Operation(timeout)
	}

	outcomes := async.All(ctx, ops...)

	rows := make([]Row, len(outcomes))
	for i, out := range outcomes {
		rows[i] = solo.Match(ctx, out,
			func(_ context.Context, v any) Row {
				return Row{Name: scenarios[i].Name, Outcome: "success", Value: v}
			},
			func(_ context.Context, msg string) Row {
				return Row{Name: scenarios[i].Name, Outcome: "error", Message: msg}
			})
	}
	return rows
}

func RenderTable(w io.Writer, rows []Row) error {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Outcome", "Value / Message")

	for _, r := range rows {
		detail := r.Message
		if r.Outcome == "success" {
			detail = fmt.Sprint(r.Value)
		}
		if err := table.Append([]string{r.Name, r.Outcome, detail}); err != nil {
			return fmt.Errorf("render row %s: %w", r.Name, err)
		}
	}

	return table.Render()
}

func RenderJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
