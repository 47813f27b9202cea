package main

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

// Report renders a Result. Timing is off by default so the output is
// reproducible.
type Report struct {
	Result
	Timing bool
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `# gridstep simulation
frames:    {{.Frames}}
dt:        {{.DeltaTime}}
speed:     {{.Speed}}
threshold: {{.Threshold}}
start:     {{.Start}}
presses:   {{.Presses}}

## steps
{{- range $i, $s := .Steps}}
{{$i}}: {{$s.Dir}} {{$s.From}} -> {{$s.To}} frames {{$s.Began}}-{{$s.Finished}} ({{$s.Frames}}) peak {{fixed $s.Peak}}
{{- else}}
none
{{- end}}

final: {{.Final}} {{.Phase}}
{{- if .Timing}}

## timing
total: {{.Elapsed}}
frame: avg {{.FrameTime.Avg}} min {{.FrameTime.Min}} max {{.FrameTime.Max}}
{{- end}}
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"fixed": func(v float64) string {
		return fmt.Sprintf("%.4f", v)
	},
}).Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
