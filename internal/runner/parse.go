package runner

import (
	"encoding/json"
	"io"
	"math"
	"sort"
	"strings"
	"time"
)

// TestEvent — одна запись потока go test -json.
type TestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// Result — итог одного теста.
type Result struct {
	Package string
	Name    string
	Status  string // pass, fail, skip
	Elapsed time.Duration
	Output  string
}

// Summary — агрегированный итог прогона.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
	Elapsed time.Duration
	Results []Result
}

// FailureOutputs возвращает вывод упавших тестов для triage.
func (s *Summary) FailureOutputs() []string {
	var outputs []string
	for _, r := range s.Results {
		if r.Status != "fail" {
			continue
		}
		outputs = append(outputs, r.Package+"."+r.Name+"\n"+r.Output)
	}
	return outputs
}

// ParseEvents читает поток go test -json и агрегирует результаты
// по тестам. Подтесты учитываются как самостоятельные результаты.
// Нераспознанные строки (сборка, вывод не в JSON) пропускаются.
func ParseEvents(r io.Reader) (*Summary, error) {
	type key struct{ pkg, test string }
	outputs := make(map[key]*strings.Builder)

	summary := &Summary{}
	dec := json.NewDecoder(r)

	for {
		var ev TestEvent
		if err := dec.Decode(&ev); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		k := key{ev.Package, ev.Test}
		switch ev.Action {
		case "output":
			if ev.Test == "" {
				continue
			}
			if outputs[k] == nil {
				outputs[k] = &strings.Builder{}
			}
			outputs[k].WriteString(ev.Output)
		case "pass", "fail", "skip":
			// go test пишет секунды как float; округляем до миллисекунд
			elapsed := time.Duration(math.Round(ev.Elapsed*1000)) * time.Millisecond
			if ev.Test == "" {
				// Итог по пакету: учитываем только длительность
				summary.Elapsed += elapsed
				continue
			}

			result := Result{
				Package: ev.Package,
				Name:    ev.Test,
				Status:  ev.Action,
				Elapsed: elapsed,
			}
			if b := outputs[k]; b != nil {
				result.Output = b.String()
			}
			summary.Results = append(summary.Results, result)

			switch ev.Action {
			case "pass":
				summary.Passed++
			case "fail":
				summary.Failed++
			case "skip":
				summary.Skipped++
			}
		}
	}

	sort.Slice(summary.Results, func(i, j int) bool {
		if summary.Results[i].Package != summary.Results[j].Package {
			return summary.Results[i].Package < summary.Results[j].Package
		}
		return summary.Results[i].Name < summary.Results[j].Name
	})
	return summary, nil
}
