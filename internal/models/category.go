package models

// CategoryEntry is one registered category.
type CategoryEntry struct {
	Code  string `json:"value"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

const (
	UncategorizedLabel   = "Uncategorized"
	DefaultCategoryEmoji = "📅"
)

// Expense category codes.
const (
	CategoryFoodDining      = "food_dining"
	CategoryGroceries       = "groceries"
	CategoryShopping        = "shopping"
	CategoryFuel            = "fuel"
	CategoryTransportation  = "transportation"
	CategoryRentUtilities   = "rent_utilities"
	CategoryCreditCardBills = "credit_card_bills"
	CategoryHealthcare      = "healthcare"
	CategoryEducation       = "education"
	CategoryEntertainment   = "entertainment"
	CategoryTravel          = "travel"
	CategorySubscriptions   = "subscriptions"
	CategoryGiftsDonations  = "gifts_donations"
	CategoryTaxes           = "taxes"
	CategoryPhoneInternet   = "phone_internet"
	CategoryMiscellaneous   = "miscellaneous"
)

// Earning category codes.
const (
	CategorySalary            = "salary"
	CategoryFreelancing       = "freelancing"
	CategoryInvestments       = "investments"
	CategoryInterestDividends = "interest_dividends"
	CategoryGiftsReceived     = "gifts_received"
	CategoryAwardsBonuses     = "awards_bonuses"
	CategoryRefunds           = "refunds"
	CategoryOtherIncome       = "other_income"
)

// ExpenseCategories returns the expense registry in display order.
func ExpenseCategories() []CategoryEntry {
	return []CategoryEntry{
		{CategoryFoodDining, "🍔 Food & Dining", KindExpense},
		{CategoryGroceries, "🛒 Groceries", KindExpense},
		{CategoryShopping, "🛍️ Shopping", KindExpense},
		{CategoryFuel, "⛽️ Fuel", KindExpense},
		{CategoryTransportation, "🚗 Transportation", KindExpense},
		{CategoryRentUtilities, "🏠 Rent & Utilities", KindExpense},
		{CategoryCreditCardBills, "💳 Credit Card Bills", KindExpense},
		{CategoryHealthcare, "🏥 Healthcare", KindExpense},
		{CategoryEducation, "📚 Education", KindExpense},
		{CategoryEntertainment, "🎬 Entertainment", KindExpense},
		{CategoryTravel, "🛫 Travel", KindExpense},
		{CategorySubscriptions, "💡 Subscriptions", KindExpense},
		{CategoryGiftsDonations, "🎁 Gifts & Donations", KindExpense},
		{CategoryTaxes, "🧾 Taxes", KindExpense},
		{CategoryPhoneInternet, "📱 Phone & Internet", KindExpense},
		{CategoryMiscellaneous, "📅 Miscellaneous", KindExpense},
	}
}

// EarningCategories returns the earning registry in display order.
func EarningCategories() []CategoryEntry {
	return []CategoryEntry{
		{CategorySalary, "💼 Salary", KindEarning},
		{CategoryFreelancing, "💵 Freelancing", KindEarning},
		{CategoryInvestments, "📈 Investments", KindEarning},
		{CategoryInterestDividends, "🏦 Interest & Dividends", KindEarning},
		{CategoryGiftsReceived, "🎁 Gifts Received", KindEarning},
		{CategoryAwardsBonuses, "🏅 Awards & Bonuses", KindEarning},
		{CategoryRefunds, "💳 Refunds", KindEarning},
		{CategoryOtherIncome, "📅 Other Income", KindEarning},
	}
}

// ChartPalette is the fixed colour cycle used for category charts.
func ChartPalette() []string {
	return []string{
		"#0088FE", "#00C49F", "#FFBB28", "#FF8042",
		"#8884D8", "#82CA9D", "#FFC658", "#8DD1E1",
		"#A4DE6C", "#D0ED57", "#F78CA0", "#748FFC",
		"#E6B89C", "#9B8816", "#93C3EE", "#F2B701",
	}
}
