// Package api defines the request/response contracts of the scoring service.
package api

import "strconv"

// Request column names, in wire order.
const (
	ColumnCPU     = "CPU"
	ColumnGHz     = "GHz"
	ColumnGPU     = "GPU"
	ColumnRAM     = "RAM"
	ColumnRAMType = "RAMType"
	ColumnScreen  = "Screen"
	ColumnStorage = "Storage"
	ColumnSSD     = "SSD"
	ColumnWeight  = "Weight"
)

// RequestColumns is the fixed column order of every ScoreRequest.
var RequestColumns = []string{
	ColumnCPU, ColumnGHz, ColumnGPU, ColumnRAM, ColumnRAMType,
	ColumnScreen, ColumnStorage, ColumnSSD, ColumnWeight,
}

// ScoreRequest is the body POSTed to the scoring endpoint.
type ScoreRequest struct {
	Inputs Inputs `json:"Inputs"`
}

// Inputs holds the named input tables. The service reads only input1.
type Inputs struct {
	Input1 Table `json:"input1"`
}

// Table is a single named-column table with one row per entry in Values.
type Table struct {
	ColumnNames []string   `json:"ColumnNames"`
	Values      [][]string `json:"Values"`
}

// NewScoreRequest builds a single-row request. Values are expected to be validated.
func NewScoreRequest(cpu, ghz, gpu, ram, ramType, screen, storage string, ssd bool, weight string) *ScoreRequest {
	names := make([]string, len(RequestColumns))
	copy(names, RequestColumns)

	row := []string{cpu, ghz, gpu, ram, ramType, screen, storage, strconv.FormatBool(ssd), weight}

	return &ScoreRequest{
		Inputs: Inputs{
			Input1: Table{
				ColumnNames: names,
				Values:      [][]string{row},
			},
		},
	}
}

// Row returns the first (and only) value row, or nil if the request is empty.
func (r *ScoreRequest) Row() []string {
	if len(r.Inputs.Input1.Values) == 0 {
		return nil
	}
	return r.Inputs.Input1.Values[0]
}
