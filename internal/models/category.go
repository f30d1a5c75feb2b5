package models

// CategoryGroup partitions categories into income and expense groups.
type CategoryGroup string

const (
	CategoryGroupIncome  CategoryGroup = "income"
	CategoryGroupExpense CategoryGroup = "expense"
)

// Category is the closed set of transaction categories. INVESTMENT is
// dual-purpose: it is an income category, and income recorded under it is
// what the rest of the system treats as savings.
type Category string

const (
	// Income categories
	CategorySalary      Category = "SALARY"
	CategoryBonus       Category = "BONUS"
	CategoryInvestment  Category = "INVESTMENT"
	CategoryOtherIncome Category = "OTHER_INCOME"

	// Expense categories
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryShopping      Category = "SHOPPING"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryBills         Category = "BILLS"
	CategoryHealthcare    Category = "HEALTHCARE"
	CategoryEducation     Category = "EDUCATION"
	CategoryOtherExpense  Category = "OTHER_EXPENSE"
)

// AllCategories lists every category, income first.
var AllCategories = []Category{
	CategorySalary, CategoryBonus, CategoryInvestment, CategoryOtherIncome,
	CategoryFood, CategoryTransport, CategoryShopping, CategoryEntertainment,
	CategoryBills, CategoryHealthcare, CategoryEducation, CategoryOtherExpense,
}

// Group returns the group a category belongs to. The switch is exhaustive
// over the closed set; an unknown value falls through to the expense group
// only via Valid() returning false first.
func (c Category) Group() CategoryGroup {
	switch c {
	case CategorySalary, CategoryBonus, CategoryInvestment, CategoryOtherIncome:
		return CategoryGroupIncome
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryEntertainment,
		CategoryBills, CategoryHealthcare, CategoryEducation, CategoryOtherExpense:
		return CategoryGroupExpense
	}
	return ""
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.Group() != ""
}

// IsIncome reports whether c is an income category.
func (c Category) IsIncome() bool {
	return c.Group() == CategoryGroupIncome
}

// IsExpense reports whether c is an expense category.
func (c Category) IsExpense() bool {
	return c.Group() == CategoryGroupExpense
}

// Matches reports whether the category group is consistent with the
// transaction type: income categories with income transactions, expense
// categories with expense transactions.
func (c Category) Matches(t TransactionType) bool {
	switch t {
	case TransactionTypeIncome:
		return c.IsIncome()
	case TransactionTypeExpense:
		return c.IsExpense()
	}
	return false
}

// CategoryInfo holds display metadata for a category.
type CategoryInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategorySalary:        {Label: "Salary", Icon: "💰", Color: "#4CAF50"},
	CategoryBonus:         {Label: "Bonus", Icon: "🎁", Color: "#8BC34A"},
	CategoryInvestment:    {Label: "Investment", Icon: "📈", Color: "#00BCD4"},
	CategoryOtherIncome:   {Label: "Other income", Icon: "💵", Color: "#009688"},
	CategoryFood:          {Label: "Food & drink", Icon: "🍔", Color: "#FF9800"},
	CategoryTransport:     {Label: "Transport", Icon: "🚗", Color: "#2196F3"},
	CategoryShopping:      {Label: "Shopping", Icon: "🛍️", Color: "#E91E63"},
	CategoryEntertainment: {Label: "Entertainment", Icon: "🎬", Color: "#9C27B0"},
	CategoryBills:         {Label: "Bills", Icon: "📄", Color: "#F44336"},
	CategoryHealthcare:    {Label: "Healthcare", Icon: "🏥", Color: "#FF5722"},
	CategoryEducation:     {Label: "Education", Icon: "📚", Color: "#3F51B5"},
	CategoryOtherExpense:  {Label: "Other expense", Icon: "💸", Color: "#607D8B"},
}

// Info returns display metadata for the category. Unknown categories get a
// zero CategoryInfo.
func (c Category) Info() CategoryInfo {
	return categoryInfo[c]
}
