package domain

import (
	"fmt"
	"sort"
	"time"
)

// MonthlyReport is the revenue view for one calendar month.
// Year is 0 when payments from every year were included.
type MonthlyReport struct {
	Month int       `json:"month"`
	Year  int       `json:"year,omitempty"`
	Items []Payment `json:"items"`
	Total float64   `json:"total"`
}

func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return NewValidationError("month", "must be between 1 and 12")
	}
	return nil
}

// PaymentsForMonth keeps payments dated in the given month of any year. Payments without a
// date are dropped. Dates are compared in their own location.
func PaymentsForMonth(payments []Payment, month int) []Payment {
	return PaymentsForPeriod(payments, month, 0)
}

// PaymentsForPeriod is PaymentsForMonth restricted to one year. A zero year matches any year.
func PaymentsForPeriod(payments []Payment, month, year int) []Payment {
	result := make([]Payment, 0)
	for _, p := range payments {
		if p.Date.IsZero() {
			continue
		}
		if int(p.Date.Month()) != month {
			continue
		}
		if year != 0 && p.Date.Year() != year {
			continue
		}
		result = append(result, p)
	}
	return result
}

func TotalAmount(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// FormatMonthlyReport filters, sums and sorts the month's payments newest first.
func FormatMonthlyReport(payments []Payment, month, year int) MonthlyReport {
	items := PaymentsForPeriod(payments, month, year)
	SortPaymentsNewestFirst(items)
	return MonthlyReport{
		Month: month,
		Year:  year,
		Items: items,
		Total: TotalAmount(items),
	}
}

func SortPaymentsNewestFirst(payments []Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
}

// InLocation returns copies of the payments with dates converted to loc.
func InLocation(payments []Payment, loc *time.Location) []Payment {
	if loc == nil {
		return payments
	}
	out := make([]Payment, len(payments))
	for i, p := range payments {
		if !p.Date.IsZero() {
			p.Date = p.Date.In(loc)
		}
		out[i] = p
	}
	return out
}

// ArchiveKey is the object key a monthly report is stored under.
func ArchiveKey(year, month int) string {
	return fmt.Sprintf("revenue-reports/%04d/%02d.json", year, month)
}
