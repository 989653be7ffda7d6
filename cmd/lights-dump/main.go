package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"infinite-lights/internal/lights"
	"infinite-lights/internal/scene"
	"infinite-lights/pkg/core"

	"gopkg.in/yaml.v3"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type attributeDump struct {
	Name   string    `yaml:"name"`
	Stride int       `yaml:"stride"`
	Data   []float32 `yaml:"data,flow"`
}

type groupDump struct {
	Name       string          `yaml:"name"`
	Count      int             `yaml:"count"`
	Attributes []attributeDump `yaml:"attributes,omitempty"`
}

type dump struct {
	Seed    int64              `yaml:"seed"`
	Options lights.Options     `yaml:"options"`
	Groups  []groupDump        `yaml:"groups"`
	Trace   []scene.TracePoint `yaml:"trace,omitempty"`
}

func main() {
	config := flag.String("config", "", "YAML scene options (defaults when empty)")
	seed := flag.Int64("seed", 1, "generator seed")
	frames := flag.Int("frames", 0, "controller frames to trace")
	fps := flag.Float64("fps", 60, "fixed trace frame rate")
	hold := flag.String("hold", "", "frame span start:end during which the pointer is held")
	buffers := flag.Bool("buffers", false, "include attribute data")
	sticks := flag.Bool("sticks", true, "generate the side light sticks")
	out := flag.String("out", "", "output file (stdout when empty)")
	var overrides kvList
	flag.Var(&overrides, "set", "option override in key=value form (repeatable)")
	flag.Parse()

	opts := lights.DefaultOptions()
	if *config != "" {
		loaded, err := lights.LoadOptions(*config)
		if err != nil {
			log.Fatalf("load options: %v", err)
		}
		opts = *loaded
	}
	if err := opts.ApplyOverrides(overrides); err != nil {
		log.Fatal(err)
	}
	held, err := parseHold(*hold)
	if err != nil {
		log.Fatal(err)
	}

	sc := scene.New(opts, scene.WithSticks(*sticks))
	sc.Mount(core.NewRNG(*seed))

	d := dump{Seed: *seed, Options: opts}
	for _, name := range []string{lights.GroupLeftCars, lights.GroupRightCars, lights.GroupSticks} {
		buf, err := sc.Buffer(name)
		if err != nil {
			continue
		}
		g := groupDump{Name: name, Count: buf.Count}
		if *buffers {
			for _, a := range buf.Attributes() {
				g.Attributes = append(g.Attributes, attributeDump{Name: a.Name, Stride: a.Stride, Data: a.Data})
			}
		}
		d.Groups = append(d.Groups, g)
	}
	if *frames > 0 {
		d.Trace, err = scene.Trace(sc, *frames, *fps, held)
		if err != nil {
			log.Fatalf("trace: %v", err)
		}
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		log.Fatalf("failed to encode dump: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("failed to flush dump: %v", err)
	}
}

// parseHold turns "start:end" into a held predicate covering [start, end).
// An empty span never holds.
func parseHold(span string) (func(int) bool, error) {
	if span == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(span, ":")
	if !ok {
		return nil, fmt.Errorf("hold %q: expected start:end", span)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return nil, fmt.Errorf("hold %q: %w", span, err)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return nil, fmt.Errorf("hold %q: %w", span, err)
	}
	return func(i int) bool { return i >= start && i < end }, nil
}
