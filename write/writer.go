package write

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// WriteSettings controls where per-iteration data and warnings are written
type WriteSettings struct {
	// DisplayWriters is where the per-iteration display is written.
	// Set to nil to suppress all display output.
	DisplayWriters []Writer
	// WarningWriter is where non-fatal diagnostic warnings are written.
	// Set to nil to suppress warnings.
	WarningWriter io.Writer
}

func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{
		DisplayWriters: []Writer{{os.Stdout, Displayer}},
		WarningWriter:  os.Stderr,
	}
}

type Type int

const (
	// Logger is a writer intended to save details of the solver run for
	// future postprocessing. The data is saved as csv and a row is printed
	// every iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the run.
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

// Value is a single named datum in the per-iteration display
type Value struct {
	Value   interface{}
	Heading string
}

// DataAdder appends per-iteration values to the display
type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display writes per-iteration data collected from its DataAdders.
// Displayer writers are rate-limited and column aligned; Logger writers
// receive a csv row every iteration.
type Display struct {
	displayValues []*Value

	headings   []string
	values     []string
	maxLengths []int

	rowsSinceHeading int
	lastValueDisplay time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer
	warning io.Writer

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	// Arrange for headings and values to be written on the first iteration
	return &Display{
		rowsSinceHeading: headingInterval + 1,
		lastValueDisplay: time.Now().Add(-valueInterval),
	}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in the display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.writers = w.DisplayWriters
	d.warning = w.WarningWriter
	d.existsDisplayer = false
	d.existsLogger = false

	if len(d.writers) == 0 {
		return nil
	}
	d.accumulateValues()

	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			d.existsLogger = true
			if err := writeCSVRow(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
		}
	}
	return nil
}

// Iterate is the write action performed at every iteration of the solver,
// as set by the Writers and DataAdders registered during initialization
func (d *Display) Iterate() error {
	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		// Rate-limit value rows so quick objective functions do not flood
		// the terminal
		displayValues = time.Since(d.lastValueDisplay) > valueInterval
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.rowsSinceHeading++
		}

		displayHeadings = d.rowsSinceHeading > headingInterval
		if displayHeadings {
			d.rowsSinceHeading = 0
		}
	}

	if !d.existsLogger && !displayValues && !displayHeadings {
		return nil
	}

	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.displayValues {
		d.values = append(d.values, valueToString(v.Value))
	}

	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			d.maxLengths = append(d.maxLengths, len(v))
			if len(d.headings[i]) > len(v) {
				d.maxLengths[i] = len(d.headings[i])
			}
		}
	}
	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			if err := writeCSVRow(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := w.Write([]byte("\n")); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Warningf writes a non-fatal diagnostic warning. Warnings are not
// rate-limited; they report conditions such as a diverging iteration.
func (d *Display) Warningf(format string, args ...interface{}) {
	if d.warning == nil {
		return
	}
	fmt.Fprintf(d.warning, "warning: "+format+"\n", args...)
}

// Donef reports the terminal condition of the run to the display writers
func (d *Display) Donef(format string, args ...interface{}) {
	for _, w := range d.writers {
		if w.T == Displayer {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func writeCSVRow(w io.Writer, values []string) error {
	for i, value := range values {
		if _, err := w.Write([]byte(value)); err != nil {
			return err
		}
		if i != len(values)-1 {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func valueToString(v interface{}) string {
	switch v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return fmt.Sprintf("%s", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
