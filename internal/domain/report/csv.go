package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyCSV = errors.New("csv sem cabeçalho")

// WriteCSV escreve o cabeçalho seguido das linhas; a ordem do cabeçalho é a ordem das colunas
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("linha %d tem %d colunas, esperado %d", i+1, len(row), len(header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV lê um CSV escrito por WriteCSV. Linhas com número de colunas
// diferente do cabeçalho são devolvidas como estão; quem consome valida.
func ReadCSV(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao ler csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyCSV
	}
	return records[0], records[1:], nil
}

// Rows converte registros em linhas seguindo a ordem do cabeçalho
func Rows(header []string, records []map[string]string) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(header))
		for i, h := range header {
			row[i] = rec[h]
		}
		rows = append(rows, row)
	}
	return rows
}
