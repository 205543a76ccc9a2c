package prompt

import (
	"fmt"
	"math"
	"strconv"

	"laptop-price/pkg/api"
	fiacerrors "laptop-price/pkg/errors"
)

// Field is one console parameter: the column it fills, the prompt shown and
// the rule its value must satisfy.
type Field struct {
	Column   string
	Prompt   string
	Validate func(string) error
}

// Fields lists every parameter in request column order.
var Fields = []Field{
	{Column: api.ColumnCPU, Prompt: "Select CPU (i3, i5, i7):", Validate: oneOf(api.ColumnCPU, "i3", "i5", "i7")},
	{Column: api.ColumnGHz, Prompt: "Enter CPU speed [GHz] (number):", Validate: number(api.ColumnGHz)},
	{Column: api.ColumnGPU, Prompt: "Select GPU (intel, nvidia, amd):", Validate: oneOf(api.ColumnGPU, "intel", "nvidia", "amd")},
	{Column: api.ColumnRAM, Prompt: "Enter RAM size [gb] (number):", Validate: number(api.ColumnRAM)},
	{Column: api.ColumnRAMType, Prompt: "Select RAM type (ddr3, ddr4):", Validate: oneOf(api.ColumnRAMType, "ddr3", "ddr4")},
	{Column: api.ColumnScreen, Prompt: "Enter screen size [in] (number):", Validate: number(api.ColumnScreen)},
	{Column: api.ColumnStorage, Prompt: "Enter storage size [gb] (number):", Validate: number(api.ColumnStorage)},
	{Column: api.ColumnSSD, Prompt: "Is storage SSD (true, false):", Validate: oneOf(api.ColumnSSD, "true", "false")},
	{Column: api.ColumnWeight, Prompt: "Enter weight [kg] (number):", Validate: number(api.ColumnWeight)},
}

// Params holds one validated set of console answers.
type Params struct {
	CPU     string
	GHz     string
	GPU     string
	RAM     string
	RAMType string
	Screen  string
	Storage string
	SSD     bool
	Weight  string
}

// Request builds the scoring request for p.
func (p Params) Request() *api.ScoreRequest {
	return api.NewScoreRequest(p.CPU, p.GHz, p.GPU, p.RAM, p.RAMType, p.Screen, p.Storage, p.SSD, p.Weight)
}

// ParseParams validates values given in Fields order and assembles Params.
func ParseParams(values []string) (Params, error) {
	if len(values) != len(Fields) {
		return Params{}, fmt.Errorf("expected %d values, got %d", len(Fields), len(values))
	}
	for i, f := range Fields {
		if err := f.Validate(values[i]); err != nil {
			return Params{}, err
		}
	}
	return Params{
		CPU:     values[0],
		GHz:     values[1],
		GPU:     values[2],
		RAM:     values[3],
		RAMType: values[4],
		Screen:  values[5],
		Storage: values[6],
		SSD:     values[7] == "true",
		Weight:  values[8],
	}, nil
}

func oneOf(column string, allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fiacerrors.NewInvalidInputError(column, v)
	}
}

func number(column string) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fiacerrors.NewInvalidInputError(column, v)
		}
		return nil
	}
}
