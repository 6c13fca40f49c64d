package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "almanac.dev/pkg/almanac/internal/model"
)

// ErrMalformedAlmanac is returned when almanac text cannot be parsed.
var ErrMalformedAlmanac = errors.New("malformed almanac")

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	maxLineSize = 1 << 20
)

// AlmanacParser turns almanac text into seed numbers and named stages.
type AlmanacParser interface {
	Parse(ctx context.Context, content []byte) (m.Almanac, error)
}

// TextAlmanacParser parses the plain-text almanac format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Every map row lists destination start, source start and length.
type TextAlmanacParser struct{}

// NewTextAlmanacParser constructs a TextAlmanacParser.
func NewTextAlmanacParser() *TextAlmanacParser {
	return &TextAlmanacParser{}
}

// Parse reads the seeds line and every map block. Rules keep their file order.
func (p *TextAlmanacParser) Parse(ctx context.Context, content []byte) (m.Almanac, error) {
	if err := ctx.Err(); err != nil {
		return m.Almanac{}, err
	}

	var (
		almanac  m.Almanac
		current  *m.Stage
		seenSeed bool
		lineNo   int
	)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			current = nil
		case strings.HasPrefix(line, seedsPrefix):
			if seenSeed {
				return m.Almanac{}, malformed(lineNo, errors.New("duplicate seeds line"))
			}

			seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return m.Almanac{}, malformed(lineNo, err)
			}

			almanac.Seeds = seeds
			seenSeed = true
		case strings.HasSuffix(line, mapSuffix):
			name := strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))
			almanac.Stages = append(almanac.Stages, m.Stage{Name: name})
			current = &almanac.Stages[len(almanac.Stages)-1]
		default:
			if current == nil {
				return m.Almanac{}, malformed(lineNo, fmt.Errorf("unexpected line %q outside a map", line))
			}

			rule, err := parseRule(line)
			if err != nil {
				return m.Almanac{}, malformed(lineNo, err)
			}

			current.Rules = append(current.Rules, rule)
		}
	}

	if err := scanner.Err(); err != nil {
		return m.Almanac{}, fmt.Errorf("read almanac: %w", err)
	}

	if !seenSeed {
		return m.Almanac{}, fmt.Errorf("%w: no seeds line", ErrMalformedAlmanac)
	}

	return almanac, nil
}

func parseRule(line string) (m.MapRule, error) {
	numbers, err := parseNumbers(line)
	if err != nil {
		return m.MapRule{}, err
	}

	if len(numbers) != 3 {
		return m.MapRule{}, fmt.Errorf("map row needs 3 numbers, got %d", len(numbers))
	}

	return m.NewMapRule(numbers[0], numbers[1], numbers[2])
}

func parseNumbers(text string) ([]uint64, error) {
	fields := strings.Fields(text)
	numbers := make([]uint64, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

func malformed(line int, err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformedAlmanac, line, err)
}
