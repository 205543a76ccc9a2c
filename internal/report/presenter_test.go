package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-price/pkg/api"
)

func init() {
	color.NoColor = true
}

func scoredResponse() *api.ScoreResponse {
	names := append(append([]string(nil), api.RequestColumns...), "Scored Labels")
	types := []string{"String", "Double", "String", "Double", "String", "Double", "Double", "Boolean", "Double", "Double"}
	row := []string{"i5", "2.4", "nvidia", "16", "ddr4", "15.6", "512", "true", "1.8", "1049.456"}
	return &api.ScoreResponse{
		Results: api.Results{
			Output1: api.Output{
				Type:  "table",
				Value: api.OutputTable{ColumnNames: names, ColumnTypes: types, Values: [][]string{row}},
			},
		},
	}
}

func TestPresent(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, DefaultOptions())

	require.NoError(t, p.Present(scoredResponse()))
	text := out.String()

	assert.Contains(t, text, "Response:")
	assert.Contains(t, text, `"ColumnNames": [`)
	assert.Contains(t, text, `"output1": {`)

	expected := []string{
		"CPU (String): i5",
		"GHz (Double): 2.4",
		"GPU (String): nvidia",
		"RAM (Double): 16",
		"RAMType (String): ddr4",
		"Screen (Double): 15.6",
		"Storage (Double): 512",
		"SSD (Boolean): true",
		"Weight (Double): 1.8",
		"=====",
		"Scored Labels (Double): € 1049.46",
	}
	last := -1
	for _, line := range expected {
		idx := strings.Index(text, line+"\n")
		require.GreaterOrEqual(t, idx, 0, line)
		assert.Greater(t, idx, last, "%q out of order", line)
		last = idx
	}
}

func TestPresentPriceByName(t *testing.T) {
	resp := scoredResponse()
	v := &resp.Results.Output1.Value
	// move the price to the front; lookup by name must still find it
	v.ColumnNames = append([]string{v.ColumnNames[9]}, v.ColumnNames[:9]...)
	v.ColumnTypes = append([]string{v.ColumnTypes[9]}, v.ColumnTypes[:9]...)
	v.Values[0] = append([]string{v.Values[0][9]}, v.Values[0][:9]...)

	var out bytes.Buffer
	p := NewPresenter(&out, Options{PriceColumn: "Scored Labels", Currency: "$"})
	require.NoError(t, p.Present(resp))

	assert.Contains(t, out.String(), "=====\nScored Labels (Double): $ 1049.46\n")
	assert.Contains(t, out.String(), "Weight (Double): 1.8\n")
	assert.NotContains(t, out.String(), "€")
}

func TestPresentNonNumericPrice(t *testing.T) {
	resp := scoredResponse()
	resp.Results.Output1.Value.Values[0][9] = "n/a"

	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, DefaultOptions()).Present(resp))
	assert.Contains(t, out.String(), "Scored Labels (Double): € n/a\n")
}

func TestPresentMissingPriceColumn(t *testing.T) {
	resp := scoredResponse()
	resp.Results.Output1.Value.ColumnNames[9] = "Prediction"

	var out bytes.Buffer
	err := NewPresenter(&out, DefaultOptions()).Present(resp)

	assert.True(t, errors.Is(err, ErrPriceColumnMissing))
	assert.Contains(t, out.String(), "Prediction (Double): 1049.456\n")
	assert.NotContains(t, out.String(), "=====")
}

func TestPresentPositionalFewerThanTenColumns(t *testing.T) {
	resp := scoredResponse()
	v := &resp.Results.Output1.Value
	v.ColumnNames = v.ColumnNames[:4]
	v.ColumnTypes = v.ColumnTypes[:4]
	v.Values[0] = v.Values[0][:4]

	var out bytes.Buffer
	p := NewPresenter(&out, Options{})

	var err error
	assert.NotPanics(t, func() { err = p.Present(resp) })
	require.ErrorIs(t, err, ErrPriceColumnMissing)
	assert.Contains(t, err.Error(), "column #10")
	assert.Contains(t, out.String(), "RAM (Double): 16\n")
}

func TestPresentPositionalTenthColumn(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, Options{}).Present(scoredResponse()))
	assert.Contains(t, out.String(), "=====\nScored Labels (Double): € 1049.46\n")
}

func TestPresentShapeMismatch(t *testing.T) {
	resp := scoredResponse()
	resp.Results.Output1.Value.ColumnTypes = resp.Results.Output1.Value.ColumnTypes[:3]

	var out bytes.Buffer
	err := NewPresenter(&out, DefaultOptions()).Present(resp)

	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, out.String(), "Response:")
	assert.NotContains(t, out.String(), "CPU (String)")
}

func TestPresentRoundsOnlyTheCurrencyLine(t *testing.T) {
	resp := scoredResponse()
	resp.Results.Output1.Value.Values[0][9] = "1999.999"

	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, DefaultOptions()).Present(resp))

	assert.Contains(t, out.String(), "Scored Labels (Double): € 2000.00\n")
	assert.Contains(t, out.String(), `"1999.999"`)
}
