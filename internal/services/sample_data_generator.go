package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDay = 1
	rentDay   = 5
)

type sampleDataGenerator struct {
	faker *gofakeit.Faker
}

// NewSampleDataGenerator returns a generator whose output is fully determined by seed.
func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{faker: gofakeit.New(seed)}
}

type spendProfile struct {
	category string
	lo, hi   float64
	prefix   string
}

var dailySpending = []spendProfile{
	{models.CategoryFoodDining, 150, 1500, "Dinner at "},
	{models.CategoryGroceries, 300, 3000, "Groceries from "},
	{models.CategoryShopping, 500, 6000, "Order from "},
	{models.CategoryFuel, 500, 2500, "Fuel at "},
	{models.CategoryTransportation, 50, 600, "Ride with "},
	{models.CategoryEntertainment, 200, 1500, "Tickets from "},
	{models.CategoryHealthcare, 200, 4000, "Pharmacy "},
}

var monthlyBills = []spendProfile{
	{models.CategoryRentUtilities, 15000, 30000, "Rent to "},
	{models.CategoryPhoneInternet, 500, 1500, "Broadband from "},
	{models.CategorySubscriptions, 150, 800, "Subscription to "},
}

// GenerateMonth builds a plausible month: salary on the 1st, bills on the 5th, an occasional
// side income and zero to three purchases a day.
func (g *sampleDataGenerator) GenerateMonth(userID uuid.UUID, year int, month time.Month) (*models.SampleData, error) {
	first, last, err := models.MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	data := &models.SampleData{}

	salary := g.amount(40000, 120000)
	data.Earnings = append(data.Earnings, g.record(userID, models.CategorySalary, salary, dayOf(first, salaryDay), "Salary from "+g.faker.Company()))

	if g.faker.Bool() {
		day := g.faker.IntRange(1, last.Day())
		data.Earnings = append(data.Earnings, g.record(userID, models.CategoryFreelancing, g.amount(5000, 25000), dayOf(first, day), "Invoice paid by "+g.faker.Company()))
	}

	for _, bill := range monthlyBills {
		data.Expenses = append(data.Expenses, g.spend(userID, bill, dayOf(first, rentDay)))
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		for i := g.faker.IntRange(0, 3); i > 0; i-- {
			profile := dailySpending[g.faker.IntRange(0, len(dailySpending)-1)]
			data.Expenses = append(data.Expenses, g.spend(userID, profile, day))
		}
	}

	return data, nil
}

func (g *sampleDataGenerator) spend(userID uuid.UUID, p spendProfile, date time.Time) models.Record {
	return g.record(userID, p.category, g.amount(p.lo, p.hi), date, p.prefix+g.faker.Company())
}

func (g *sampleDataGenerator) amount(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(lo, hi)).Round(2)
}

func (g *sampleDataGenerator) record(userID uuid.UUID, category string, amount decimal.Decimal, date time.Time, description string) models.Record {
	return models.Record{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: &description,
	}
}

func dayOf(first time.Time, day int) time.Time {
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
