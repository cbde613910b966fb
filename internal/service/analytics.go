package service

import (
	"time"

	"family-finance-backend/internal/auth"
	"family-finance-backend/internal/database/models"
	apperrors "family-finance-backend/internal/errors"
	"family-finance-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsService computes read-side summaries over the transaction ledger.
// All accumulation happens in decimal fixed-point; values become float64 only
// in the response DTO. Aggregation never writes.
type AnalyticsService struct {
	transactionRepo repository.TransactionRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(transactionRepo repository.TransactionRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{transactionRepo: transactionRepo}
}

// SummaryRequest represents the parameters for a period summary
type SummaryRequest struct {
	StartDate time.Time
	EndDate   time.Time
	AssetID   *uuid.UUID
	// SignedCategories switches the category breakdown from the historical
	// unsigned accumulation (income and expenses added into the same bucket)
	// to signed amounts (expenses negative).
	SignedCategories bool
}

// MonthlyTotals holds the income/expense pair for one calendar month
type MonthlyTotals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// PreviousPeriodComparison carries the prior period totals and the deltas
// against the current period
type PreviousPeriodComparison struct {
	Income            float64 `json:"income"`
	Expenses          float64 `json:"expenses"`
	IncomeChangePct   float64 `json:"income_change_pct"`
	ExpensesChangePct float64 `json:"expenses_change_pct"`
}

// SummaryResponse is the computed analytics result for a date range
type SummaryResponse struct {
	TotalIncome       float64                  `json:"total_income"`
	TotalExpenses     float64                  `json:"total_expenses"`
	NetIncome         float64                  `json:"net_income"`
	CategoryBreakdown map[string]float64       `json:"category_breakdown"`
	MonthlyTrend      map[string]MonthlyTotals `json:"monthly_trend"`
	PreviousPeriod    PreviousPeriodComparison `json:"previous_period"`
}

// periodTotals accumulates one period's sums in fixed-point
type periodTotals struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

// Summarize computes totals, category breakdown, monthly trend and
// previous-period deltas for the caller's transactions in [start, end]
// inclusive. TRANSFER entries move money between assets and count as neither
// income nor expense. An empty range is not an error and yields zeros.
func (s *AnalyticsService) Summarize(principal *auth.Principal, req *SummaryRequest) (*SummaryResponse, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, &apperrors.ValidationError{Field: "start_date", Message: "start and end dates are required"}
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, &apperrors.ValidationError{Field: "end_date", Message: "end date must not precede start date"}
	}

	current, err := s.transactionRepo.GetByDateRange(principal.OrganizationID, principal.UserID, req.StartDate, req.EndDate, req.AssetID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "load period transactions", Err: err}
	}

	totals := periodTotals{income: decimal.Zero, expenses: decimal.Zero}
	categories := make(map[string]decimal.Decimal)
	trend := make(map[string]periodTotals)

	for _, txn := range current {
		monthKey := txn.Date.Format("2006-01")
		monthTotals := trend[monthKey]

		switch txn.Type {
		case models.TransactionTypeIncome:
			totals.income = totals.income.Add(txn.Amount)
			monthTotals.income = monthTotals.income.Add(txn.Amount)
			categories[txn.Category] = categories[txn.Category].Add(txn.Amount)
		case models.TransactionTypeExpense:
			totals.expenses = totals.expenses.Add(txn.Amount)
			monthTotals.expenses = monthTotals.expenses.Add(txn.Amount)
			if req.SignedCategories {
				categories[txn.Category] = categories[txn.Category].Sub(txn.Amount)
			} else {
				categories[txn.Category] = categories[txn.Category].Add(txn.Amount)
			}
		case models.TransactionTypeTransfer:
			// Transfers are internal moves, excluded from every sum.
		}

		trend[monthKey] = monthTotals
	}

	// Previous period: both boundaries shift back one calendar month. For a
	// full-month range this is the preceding month; for other ranges it
	// intentionally mirrors the historical dashboard behavior.
	prevStart := req.StartDate.AddDate(0, -1, 0)
	prevEnd := req.EndDate.AddDate(0, -1, 0)

	previous, err := s.transactionRepo.GetByDateRange(principal.OrganizationID, principal.UserID, prevStart, prevEnd, req.AssetID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "load previous period transactions", Err: err}
	}

	prevTotals := periodTotals{income: decimal.Zero, expenses: decimal.Zero}
	for _, txn := range previous {
		switch txn.Type {
		case models.TransactionTypeIncome:
			prevTotals.income = prevTotals.income.Add(txn.Amount)
		case models.TransactionTypeExpense:
			prevTotals.expenses = prevTotals.expenses.Add(txn.Amount)
		}
	}

	response := &SummaryResponse{
		TotalIncome:       totals.income.InexactFloat64(),
		TotalExpenses:     totals.expenses.InexactFloat64(),
		NetIncome:         totals.income.Sub(totals.expenses).InexactFloat64(),
		CategoryBreakdown: make(map[string]float64, len(categories)),
		MonthlyTrend:      make(map[string]MonthlyTotals, len(trend)),
		PreviousPeriod: PreviousPeriodComparison{
			Income:            prevTotals.income.InexactFloat64(),
			Expenses:          prevTotals.expenses.InexactFloat64(),
			IncomeChangePct:   changePct(totals.income, prevTotals.income),
			ExpensesChangePct: changePct(totals.expenses, prevTotals.expenses),
		},
	}
	for category, amount := range categories {
		response.CategoryBreakdown[category] = amount.InexactFloat64()
	}
	for month, monthTotals := range trend {
		response.MonthlyTrend[month] = MonthlyTotals{
			Income:   monthTotals.income.InexactFloat64(),
			Expenses: monthTotals.expenses.InexactFloat64(),
		}
	}

	return response, nil
}

// changePct returns (current - previous) / previous * 100, with the explicit
// policy that a zero previous value yields 0 rather than infinity or NaN.
func changePct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	hundred := decimal.NewFromInt(100)
	return current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
}
