package services

import (
	"sort"

	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/store"
)

// SalaryService reconciles the three month ledgers into one statement
// per worker. It only ever reads, so any number of calculations can run
// concurrently; the result is a pure function of ledger state.
type SalaryService struct {
	Store store.Store
}

func NewSalaryService(s store.Store) *SalaryService {
	return &SalaryService{Store: s}
}

// GetSalaries computes the statement for every worker for (year, month).
//
// A worker earns their day rate for every day they were scheduled, plus
// their percent share of an even split of that day's percent-eligible
// revenue among everyone scheduled that day. Days where revenue was
// recorded but nobody was scheduled contribute nothing. Workers with no
// activity in the month still get a statement of zeros.
func (s *SalaryService) GetSalaries(year, month int) ([]models.SalaryStatement, error) {
	users, err := s.Store.GetUsers(nil)
	if err != nil {
		return nil, err
	}
	schedule, err := s.Store.GetSchedule(year, month)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Store.GetRevenue(year, month)
	if err != nil {
		return nil, err
	}
	payouts, err := s.Store.GetPayouts(year, month)
	if err != nil {
		return nil, err
	}

	crewByDay := make(map[int]map[uint]struct{})
	daysByUser := make(map[uint]map[int]struct{})
	for _, entry := range schedule {
		if crewByDay[entry.Day] == nil {
			crewByDay[entry.Day] = make(map[uint]struct{})
		}
		crewByDay[entry.Day][entry.UserID] = struct{}{}
		if daysByUser[entry.UserID] == nil {
			daysByUser[entry.UserID] = make(map[int]struct{})
		}
		daysByUser[entry.UserID][entry.Day] = struct{}{}
	}

	revenueByDay := make(map[int]models.RevenueEntry, len(revenue))
	for _, entry := range revenue {
		revenueByDay[entry.Day] = entry
	}

	paidByUser := make(map[uint]float64)
	for _, record := range payouts {
		paidByUser[record.UserID] += record.Amount
	}

	var statements []models.SalaryStatement
	for _, user := range users {
		if !user.IsWorker {
			continue
		}
		workedDays := daysByUser[user.ID]
		owed := user.Pay * float64(len(workedDays))
		for day := range workedDays {
			rev, ok := revenueByDay[day]
			if !ok {
				continue
			}
			crew := len(crewByDay[day])
			if crew == 0 {
				continue
			}
			owed += rev.WithPercent / float64(crew) * user.Percent / 100
		}
		paid := paidByUser[user.ID]
		statements = append(statements, models.SalaryStatement{
			UserID:     user.ID,
			AmountPaid: paid,
			AmountOwed: owed,
			Total:      owed + paid,
		})
	}

	// Ledger rows arrive in no particular order; fix the output order so
	// the result is deterministic.
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].UserID < statements[j].UserID
	})
	return statements, nil
}
