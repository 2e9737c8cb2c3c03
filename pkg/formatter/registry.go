package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatXML     = "xml"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatText    = "text"
)

// Result is a named, counted set of integers.
type Result struct {
	Name    string `json:"name" yaml:"name" msgpack:"name"`
	Amount  int    `json:"amount" yaml:"amount" msgpack:"amount"`
	Numbers []int  `json:"result" yaml:"result" msgpack:"result"`
}

// NewResult builds a Result whose Amount matches len(numbers).
func NewResult(name string, numbers []int) Result {
	if numbers == nil {
		numbers = []int{}
	}
	return Result{Name: name, Amount: len(numbers), Numbers: numbers}
}

// EncoderFunc writes r to w in one format.
type EncoderFunc func(w io.Writer, r Result, opts Options) error

// Registry of formats; Register is last-wins.
var encoders = map[string]EncoderFunc{}

func init() {
	Register(FormatXML, encodeXML)
	Register(FormatJSON, encodeJSON)
	Register(FormatYAML, encodeYAML)
	Register(FormatMsgpack, encodeMsgpack)
	Register(FormatText, encodeText)
}

// Register adds or replaces the encoder for format.
func Register(format string, fn EncoderFunc) {
	encoders[format] = fn
}

// Encode writes r to w using the encoder registered for format.
func Encode(format string, w io.Writer, r Result, opts Options) error {
	fn, ok := encoders[format]
	if !ok {
		return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, r, opts)
}

// Supported reports whether an encoder is registered for format.
func Supported(format string) bool {
	_, ok := encoders[format]
	return ok
}

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for k := range encoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func encodeXML(w io.Writer, r Result, opts Options) error {
	doc, err := NewXML(opts).ToXML(r.Name, r.Numbers)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func encodeJSON(w io.Writer, r Result, opts Options) error {
	enc := json.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(r)
}

func encodeYAML(w io.Writer, r Result, _ Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func encodeMsgpack(w io.Writer, r Result, _ Options) error {
	return msgpack.NewEncoder(w).Encode(r)
}

// encodeText renders "name (N): v1 v2 ...". Styling only applies when w is a
// color-capable terminal.
func encodeText(w io.Writer, r Result, _ Options) error {
	renderer := lipgloss.NewRenderer(w)
	nameStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	countStyle := renderer.NewStyle().Faint(true)

	values := make([]string, len(r.Numbers))
	for i, n := range r.Numbers {
		values[i] = strconv.Itoa(n)
	}

	line := fmt.Sprintf("%s %s: %s",
		nameStyle.Render(r.Name),
		countStyle.Render("("+strconv.Itoa(r.Amount)+")"),
		strings.Join(values, " "))
	_, err := fmt.Fprintln(w, strings.TrimRight(line, " "))
	return err
}

// DecodeMsgpack reads a Result previously written with the msgpack encoder.
func DecodeMsgpack(rd io.Reader) (Result, error) {
	var r Result
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return Result{}, fmt.Errorf("decoding msgpack result: %w", err)
	}
	return r, nil
}
