package utils

import "time"

// PeriodLayout é o formato do período fiscal ("2025-06").
const PeriodLayout = "2006-01"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParsePeriod valida e converte um período fiscal "AAAA-MM" para o primeiro
// dia do mês.
func ParsePeriod(period string) (time.Time, error) {
	return time.Parse(PeriodLayout, period)
}

// PeriodOf devolve o período fiscal de uma data.
func PeriodOf(t time.Time) string {
	return t.Format(PeriodLayout)
}

// PreviousPeriod devolve o período fiscal anterior ao da data informada.
// Ancorado no primeiro dia do mês: AddDate direto sobre dias 29-31 normaliza
// para o mês seguinte (31 de março - 1 mês = 3 de março) e devolveria o
// período errado.
func PreviousPeriod(t time.Time) string {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return firstOfMonth.AddDate(0, -1, 0).Format(PeriodLayout)
}

// PeriodBounds devolve o primeiro dia do período e o primeiro dia do período
// seguinte (intervalo meio-aberto para consultas por data de instalação).
func PeriodBounds(period string) (time.Time, time.Time, error) {
	start, err := ParsePeriod(period)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}
