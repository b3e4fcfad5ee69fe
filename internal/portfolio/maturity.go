package portfolio

import (
	"math"
	"sort"
	"strconv"
	"time"

	"finalloc/internal/currency"
	"finalloc/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	daysPerYear = 365.25
	hoursPerDay = 24
)

// MaturityEarning is the simple-interest projection for one Bond or Deposit.
type MaturityEarning struct {
	InvestmentID             string  `json:"investmentId"`
	Name                     string  `json:"name"`
	Currency                 string  `json:"currency"`
	Country                  string  `json:"country"`
	AssetClass               string  `json:"assetClass"`
	PrincipalAmount          float64 `json:"principalAmount"`
	CouponRate               float64 `json:"couponRate"`
	MaturityDate             string  `json:"maturityDate"`
	DaysToMaturity           int     `json:"daysToMaturity"`
	YearsToMaturity          float64 `json:"yearsToMaturity"`
	TotalInterestEarned      float64 `json:"totalInterestEarned"`
	TotalAmountAtMaturity    float64 `json:"totalAmountAtMaturity"`
	USDPrincipalAmount       float64 `json:"usdPrincipalAmount"`
	USDTotalInterestEarned   float64 `json:"usdTotalInterestEarned"`
	USDTotalAmountAtMaturity float64 `json:"usdTotalAmountAtMaturity"`
	AnnualizedReturn         float64 `json:"annualizedReturn"`

	year int
}

// MaturityRollup sums principal, interest, and maturity value over a group.
type MaturityRollup struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
}

func (r *MaturityRollup) add(principal, interest, total float64) {
	r.Principal += principal
	r.Interest += interest
	r.Total += total
	r.Count++
}

// MaturitySummary aggregates the projected earnings. ByCurrency is in each
// currency's own units; ByMaturityYear and ByCurrencyUSD are in USD.
type MaturitySummary struct {
	TotalPrincipal           float64                   `json:"totalPrincipal"`
	TotalInterestEarned      float64                   `json:"totalInterestEarned"`
	TotalAmountAtMaturity    float64                   `json:"totalAmountAtMaturity"`
	USDTotalPrincipal        float64                   `json:"usdTotalPrincipal"`
	USDTotalInterestEarned   float64                   `json:"usdTotalInterestEarned"`
	USDTotalAmountAtMaturity float64                   `json:"usdTotalAmountAtMaturity"`
	AverageAnnualizedReturn  float64                   `json:"averageAnnualizedReturn"`
	TotalInvestments         int                       `json:"totalInvestments"`
	ByCurrency               map[string]MaturityRollup `json:"byCurrency"`
	ByCurrencyUSD            map[string]MaturityRollup `json:"byCurrencyUSD"`
	ByMaturityYear           map[string]MaturityRollup `json:"byMaturityYear"`
}

// MaturityReport is the full projection.
type MaturityReport struct {
	Earnings []MaturityEarning `json:"earnings"`
	Summary  MaturitySummary   `json:"summary"`
}

// ProjectMaturity projects earnings for Bond and Deposit records matching f
// that have a maturity date after today and a positive coupon rate.
// Earnings are ordered by days to maturity, then id.
func ProjectMaturity(records []models.Investment, f Filter, today time.Time, table currency.Table) MaturityReport {
	earnings := []MaturityEarning{}

	for _, inv := range f.Apply(records) {
		if !inv.AssetClass.HasMaturity() || inv.MaturityDate == nil || inv.CouponRate == nil || *inv.CouponRate <= 0 {
			continue
		}
		maturity, err := time.Parse(dateLayout, *inv.MaturityDate)
		if err != nil {
			continue
		}
		days := DaysUntil(maturity, today)
		if days <= 0 {
			continue
		}

		years := float64(days) / daysPerYear
		interest := inv.Amount * (*inv.CouponRate / 100) * years
		total := inv.Amount + interest

		annualized := 0.0
		if years > 0 && inv.Amount != 0 {
			annualized = interest / inv.Amount / years * 100
		}

		earnings = append(earnings, MaturityEarning{
			InvestmentID:             inv.ID,
			Name:                     inv.Name,
			Currency:                 inv.Currency,
			Country:                  inv.Country,
			AssetClass:               string(inv.AssetClass),
			PrincipalAmount:          inv.Amount,
			CouponRate:               *inv.CouponRate,
			MaturityDate:             *inv.MaturityDate,
			DaysToMaturity:           days,
			YearsToMaturity:          years,
			TotalInterestEarned:      interest,
			TotalAmountAtMaturity:    total,
			USDPrincipalAmount:       table.ToUSD(inv.Amount, inv.Currency),
			USDTotalInterestEarned:   table.ToUSD(interest, inv.Currency),
			USDTotalAmountAtMaturity: table.ToUSD(total, inv.Currency),
			AnnualizedReturn:         annualized,
			year:                     maturity.Year(),
		})
	}

	sort.SliceStable(earnings, func(a, b int) bool {
		if earnings[a].DaysToMaturity != earnings[b].DaysToMaturity {
			return earnings[a].DaysToMaturity < earnings[b].DaysToMaturity
		}
		return earnings[a].InvestmentID < earnings[b].InvestmentID
	})

	return MaturityReport{Earnings: earnings, Summary: summarizeMaturity(earnings, table)}
}

// DaysUntil is the number of days from now until the start of the maturity
// date, rounded up.
func DaysUntil(maturity, now time.Time) int {
	return int(math.Ceil(maturity.Sub(now).Hours() / hoursPerDay))
}

func summarizeMaturity(earnings []MaturityEarning, table currency.Table) MaturitySummary {
	s := MaturitySummary{
		TotalInvestments: len(earnings),
		ByCurrency:       map[string]MaturityRollup{},
		ByCurrencyUSD:    map[string]MaturityRollup{},
		ByMaturityYear:   map[string]MaturityRollup{},
	}
	if len(earnings) == 0 {
		return s
	}

	var annualized float64
	for _, e := range earnings {
		s.TotalPrincipal += e.PrincipalAmount
		s.TotalInterestEarned += e.TotalInterestEarned
		s.TotalAmountAtMaturity += e.TotalAmountAtMaturity
		s.USDTotalPrincipal += e.USDPrincipalAmount
		s.USDTotalInterestEarned += e.USDTotalInterestEarned
		s.USDTotalAmountAtMaturity += e.USDTotalAmountAtMaturity
		annualized += e.AnnualizedReturn

		byCur := s.ByCurrency[e.Currency]
		byCur.add(e.PrincipalAmount, e.TotalInterestEarned, e.TotalAmountAtMaturity)
		s.ByCurrency[e.Currency] = byCur

		year := strconv.Itoa(e.year)
		byYear := s.ByMaturityYear[year]
		byYear.add(e.USDPrincipalAmount, e.USDTotalInterestEarned, e.USDTotalAmountAtMaturity)
		s.ByMaturityYear[year] = byYear
	}
	s.AverageAnnualizedReturn = annualized / float64(len(earnings))

	for code, r := range s.ByCurrency {
		s.ByCurrencyUSD[code] = MaturityRollup{
			Principal: table.ToUSD(r.Principal, code),
			Interest:  table.ToUSD(r.Interest, code),
			Total:     table.ToUSD(r.Total, code),
			Count:     r.Count,
		}
	}
	return s
}
