package report

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("período inválido")

// Period é a janela de comparação dos relatórios
type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"
	PeriodYear   Period = "1y"
)

// DefaultPeriod é usado quando nenhum período é informado
const DefaultPeriod = Period30Days

// ParsePeriod valida o período; vazio retorna o padrão
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(raw); p {
	case "":
		return DefaultPeriod, nil
	case Period7Days, Period30Days, Period90Days, PeriodYear:
		return p, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Window é um intervalo [From, To)
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (p Period) start(end time.Time) time.Time {
	switch p {
	case Period7Days:
		return end.AddDate(0, 0, -7)
	case Period90Days:
		return end.AddDate(0, 0, -90)
	case PeriodYear:
		return end.AddDate(-1, 0, 0)
	default:
		return end.AddDate(0, 0, -30)
	}
}

// Range retorna a janela atual terminando em now e a janela anterior imediatamente antes dela
func (p Period) Range(now time.Time) (current, previous Window) {
	current = Window{From: p.start(now), To: now}
	previous = Window{From: p.start(current.From), To: current.From}
	return current, previous
}

// Monthly indica se os gráficos do período devem ser agrupados por mês
func (p Period) Monthly() bool {
	return p == PeriodYear
}

// Sample é um valor pontual a ser agrupado
type Sample struct {
	At     time.Time
	Amount float64
}

// Bucket é um ponto da série de um gráfico
type Bucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	Value float64   `json:"value"`
	Count int       `json:"count"`
}

// BucketByDay agrupa as amostras por dia dentro da janela, preenchendo dias vazios com zero
func BucketByDay(samples []Sample, w Window) []Bucket {
	return bucket(samples, w, dayStart, func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }, "2006-01-02")
}

// BucketByMonth agrupa as amostras por mês dentro da janela
func BucketByMonth(samples []Sample, w Window) []Bucket {
	return bucket(samples, w, monthStart, func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }, "2006-01")
}

// BucketFor escolhe a granularidade adequada ao período
func BucketFor(p Period, samples []Sample, w Window) []Bucket {
	if p.Monthly() {
		return BucketByMonth(samples, w)
	}
	return BucketByDay(samples, w)
}

func bucket(samples []Sample, w Window, trunc func(time.Time) time.Time, next func(time.Time) time.Time, layout string) []Bucket {
	var buckets []Bucket
	index := map[time.Time]int{}
	for t := trunc(w.From); t.Before(w.To); t = next(t) {
		index[t] = len(buckets)
		buckets = append(buckets, Bucket{Label: t.Format(layout), Start: t})
	}

	for _, s := range samples {
		if s.At.Before(w.From) || !s.At.Before(w.To) {
			continue
		}
		if i, ok := index[trunc(s.At.In(w.From.Location()))]; ok {
			buckets[i].Value += s.Amount
			buckets[i].Count++
		}
	}
	return buckets
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
