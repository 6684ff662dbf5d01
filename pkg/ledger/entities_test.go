package ledger_test

import (
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/ledger"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *StoreSuite) indexOf(category string) int {
	for i, c := range suite.store.Categories() {
		if c == category {
			return i
		}
	}

	suite.FailNow("category not found", category)
	return -1
}

func (suite *StoreSuite) TestAddCategory() {
	name, err := suite.store.AddCategory("  Pets ")
	suite.Require().NoError(err)
	suite.Assert().Equal("Pets", name)
	suite.Assert().Equal("Pets", suite.store.Categories()[len(models.DefaultCategories)])

	_, err = suite.store.AddCategory("Pets")
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	_, err = suite.store.AddCategory(" ")
	suite.Assert().ErrorIs(err, models.ErrNameEmpty)

	suite.Assert().Len(suite.store.Categories(), len(models.DefaultCategories)+1)
	suite.Assert().Contains(suite.reload().Categories(), "Pets")
}

func (suite *StoreSuite) TestUpdateCategoryCascades() {
	suite.budget("Food", "300")
	suite.transaction("20", "Food", models.Expense)
	_, err := suite.store.In(april).AddBudget(models.BudgetCreate{Category: "Food", Amount: decimal.NewFromInt(250)})
	suite.Require().NoError(err)
	_, err = suite.store.In(april).AddTransaction(models.TransactionCreate{
		Amount: decimal.NewFromInt(15), Description: "Bakery", Category: "Food",
		Date: types.NewDate(2024, time.April, 9), Type: models.Expense,
	})
	suite.Require().NoError(err)

	index := suite.indexOf("Food")
	name, err := suite.store.UpdateCategory(index, "Groceries")
	suite.Require().NoError(err)
	suite.Assert().Equal("Groceries", name)
	suite.Assert().Equal("Groceries", suite.store.Categories()[index])
	suite.Assert().NotContains(suite.store.Categories(), "Food")

	for _, store := range []*ledger.Store{suite.store, suite.reload()} {
		for _, month := range []types.Month{april, may} {
			p := store.In(month).Partition()
			suite.Assert().False(p.References("Food"), month.String())
			suite.Require().Len(p.Transactions, 1)
			suite.Assert().Equal("Groceries", p.Transactions[0].Category)
			suite.Require().Len(p.Budgets, 1)
			suite.Assert().Equal("Groceries", p.Budgets[0].Category)
		}
	}

	suite.assertSpentInvariant(may)
	suite.assertSpentInvariant(april)
}

func (suite *StoreSuite) TestUpdateCategoryRejected() {
	_, err := suite.store.UpdateCategory(-1, "Groceries")
	suite.Assert().ErrorIs(err, ledger.ErrCategoryIndex)

	_, err = suite.store.UpdateCategory(len(models.DefaultCategories), "Groceries")
	suite.Assert().ErrorIs(err, ledger.ErrCategoryIndex)

	_, err = suite.store.UpdateCategory(suite.indexOf("Food"), "Housing")
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	_, err = suite.store.UpdateCategory(suite.indexOf("Food"), "")
	suite.Assert().ErrorIs(err, models.ErrNameEmpty)

	name, err := suite.store.UpdateCategory(suite.indexOf("Food"), "Food")
	suite.Assert().NoError(err)
	suite.Assert().Equal("Food", name)

	suite.Assert().Equal(models.DefaultCategories, suite.store.Categories())
}

func (suite *StoreSuite) TestDeleteCategory() {
	suite.Require().NoError(suite.store.DeleteCategory(suite.indexOf("Gifts/Donations")))
	suite.Assert().NotContains(suite.store.Categories(), "Gifts/Donations")
	suite.Assert().NotContains(suite.reload().Categories(), "Gifts/Donations")

	suite.Assert().ErrorIs(suite.store.DeleteCategory(100), ledger.ErrCategoryIndex)
}

func (suite *StoreSuite) TestReservedCategories() {
	for _, name := range models.ReservedCategories {
		_, err := suite.store.UpdateCategory(suite.indexOf(name), name+" 2")
		suite.Assert().ErrorIs(err, ledger.ErrCategoryReserved, name)
		suite.Assert().ErrorIs(suite.store.DeleteCategory(suite.indexOf(name)), ledger.ErrCategoryReserved, name)
	}
	suite.Assert().Equal(models.DefaultCategories, suite.store.Categories())

	goal := suite.goal("1200", "0")
	_, _, err := suite.store.ContributeSavingsGoal(goal.ID, decimal.NewFromInt(50))
	suite.Assert().NoError(err)

	debt := suite.debt("1000", "0")
	_, _, err = suite.store.MakeDebtPayment(debt.ID, decimal.NewFromInt(50))
	suite.Assert().NoError(err)
}

func (suite *StoreSuite) TestDeleteCategoryInUse() {
	_, err := suite.store.In(april).AddTransaction(models.TransactionCreate{
		Amount: decimal.NewFromInt(15), Description: "Bakery", Category: "Food",
		Date: types.NewDate(2024, time.April, 9), Type: models.Expense,
	})
	suite.Require().NoError(err)
	_, err = suite.store.In(june).AddBudget(models.BudgetCreate{Category: "Housing", Amount: decimal.NewFromInt(900)})
	suite.Require().NoError(err)

	before := suite.store.Categories()

	suite.Assert().ErrorIs(suite.store.DeleteCategory(suite.indexOf("Food")), ledger.ErrCategoryInUse)
	suite.Assert().ErrorIs(suite.store.DeleteCategory(suite.indexOf("Housing")), ledger.ErrCategoryInUse)
	suite.Assert().Equal(before, suite.store.Categories())

	suite.Require().NoError(suite.store.In(june).DeleteBudget("Housing"))
	suite.Assert().NoError(suite.store.DeleteCategory(suite.indexOf("Housing")))
}

func (suite *StoreSuite) goal(target, current string) models.SavingsGoal {
	goal, err := suite.store.AddSavingsGoal(models.SavingsGoalCreate{
		Name:          "Emergency fund",
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
	})
	suite.Require().NoError(err)
	return goal
}

func (suite *StoreSuite) TestSavingsGoalLifecycle() {
	goal := suite.goal("5000", "0")
	suite.Assert().False(goal.ID.IsNil())

	fetched, err := suite.store.SavingsGoal(goal.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("Emergency fund", fetched.Name)

	deadline := types.NewDate(2025, time.December, 31)
	goal.Name = "Rainy day"
	goal.CurrentAmount = decimal.NewFromInt(100)
	goal.Deadline = &deadline
	updated, err := suite.store.UpdateSavingsGoal(goal)
	suite.Require().NoError(err)
	suite.Assert().Equal("Rainy day", updated.Name)

	goal.CurrentAmount = decimal.NewFromInt(50)
	_, err = suite.store.UpdateSavingsGoal(goal)
	suite.Assert().ErrorIs(err, ledger.ErrProgressDecrease)

	goal.CurrentAmount = decimal.NewFromInt(100)
	goal.TargetAmount = decimal.Zero
	_, err = suite.store.UpdateSavingsGoal(goal)
	suite.Assert().ErrorIs(err, models.ErrGoalAmountNotPositive)

	suite.Require().NoError(suite.store.DeleteSavingsGoal(goal.ID))
	suite.Assert().ErrorIs(suite.store.DeleteSavingsGoal(goal.ID), ledger.ErrGoalNotFound)
	_, err = suite.store.SavingsGoal(goal.ID)
	suite.Assert().ErrorIs(err, ledger.ErrGoalNotFound)
	suite.Assert().Empty(suite.reload().SavingsGoals())
}

func (suite *StoreSuite) TestAddSavingsGoalRejected() {
	_, err := suite.store.AddSavingsGoal(models.SavingsGoalCreate{Name: "", TargetAmount: decimal.NewFromInt(1)})
	suite.Assert().ErrorIs(err, models.ErrNameEmpty)

	_, err = suite.store.AddSavingsGoal(models.SavingsGoalCreate{Name: "Car", TargetAmount: decimal.NewFromInt(1), CurrentAmount: decimal.NewFromInt(-1)})
	suite.Assert().ErrorIs(err, models.ErrGoalCurrentNegative)

	suite.Assert().Empty(suite.store.SavingsGoals())
}

func (suite *StoreSuite) TestContributeSavingsGoal() {
	suite.budget("Savings", "400")
	goal := suite.goal("1000", "250")

	updated, transaction, err := suite.store.ContributeSavingsGoal(goal.ID, decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.assertDecimal("350", updated.CurrentAmount)

	suite.Assert().Equal(models.SavingsCategory, transaction.Category)
	suite.Assert().Equal(models.Expense, transaction.Type)
	suite.Assert().Equal("Contribution to Emergency fund", transaction.Description)
	suite.Assert().Equal("2024-05-15", transaction.Date.String())
	suite.assertDecimal("100", transaction.Amount)

	suite.Assert().Equal(transaction.ID, suite.store.Transactions()[0].ID)
	savings, _ := suite.store.Budget("Savings")
	suite.assertDecimal("100", savings.Spent)

	reloaded := suite.reload()
	stored, err := reloaded.SavingsGoal(goal.ID)
	suite.Require().NoError(err)
	suite.assertDecimal("350", stored.CurrentAmount)
	suite.Assert().Len(reloaded.Transactions(), 1)
}

func (suite *StoreSuite) TestContributeSavingsGoalRejected() {
	goal := suite.goal("1000", "250")

	_, _, err := suite.store.ContributeSavingsGoal(goal.ID, decimal.Zero)
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	_, _, err = suite.store.ContributeSavingsGoal(uuid.New(), decimal.NewFromInt(5))
	suite.Assert().ErrorIs(err, ledger.ErrGoalNotFound)

	suite.Require().NoError(suite.store.DeleteCategory(suite.indexOf(models.SavingsCategory)))
	_, _, err = suite.store.ContributeSavingsGoal(goal.ID, decimal.NewFromInt(5))
	suite.Assert().ErrorIs(err, ledger.ErrCategoryNotFound)

	stored, _ := suite.store.SavingsGoal(goal.ID)
	suite.assertDecimal("250", stored.CurrentAmount)
	suite.Assert().Empty(suite.store.Transactions())
}

func (suite *StoreSuite) TestContributionDatedInScopeMonth() {
	goal := suite.goal("1000", "0")

	_, transaction, err := suite.store.In(april).ContributeSavingsGoal(goal.ID, decimal.NewFromInt(10))
	suite.Require().NoError(err)
	suite.Assert().Equal("2024-04-01", transaction.Date.String())
	suite.Assert().Len(suite.store.In(april).Transactions(), 1)
	suite.Assert().Empty(suite.store.Transactions())
}

func (suite *StoreSuite) debt(total, paid string) models.Debt {
	debt, err := suite.store.AddDebt(models.DebtCreate{
		Name:        "Car loan",
		TotalAmount: decimal.RequireFromString(total),
		PaidAmount:  decimal.RequireFromString(paid),
	})
	suite.Require().NoError(err)
	return debt
}

func (suite *StoreSuite) TestMakeDebtPayment() {
	debt := suite.debt("1000", "200")

	updated, transaction, err := suite.store.MakeDebtPayment(debt.ID, decimal.NewFromInt(150))
	suite.Require().NoError(err)
	suite.assertDecimal("350", updated.PaidAmount)
	suite.assertDecimal("650", updated.Remaining())
	suite.Assert().Equal(models.DebtCategory, transaction.Category)
	suite.Assert().Equal(models.Expense, transaction.Type)
	suite.Assert().Equal("Payment to Car loan", transaction.Description)
	suite.assertDecimal("150", transaction.Amount)

	_, _, err = suite.store.MakeDebtPayment(debt.ID, decimal.NewFromInt(900))
	suite.Assert().ErrorIs(err, ledger.ErrPaymentExceedsRemaining)

	stored, err := suite.store.Debt(debt.ID)
	suite.Require().NoError(err)
	suite.assertDecimal("350", stored.PaidAmount)
	suite.Assert().Len(suite.store.Transactions(), 1)

	_, _, err = suite.store.MakeDebtPayment(debt.ID, decimal.NewFromInt(650))
	suite.Require().NoError(err)
	stored, _ = suite.store.Debt(debt.ID)
	suite.Assert().True(stored.Remaining().IsZero())
}

func (suite *StoreSuite) TestMakeDebtPaymentRejected() {
	debt := suite.debt("1000", "0")

	_, _, err := suite.store.MakeDebtPayment(debt.ID, decimal.NewFromInt(-1))
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	_, _, err = suite.store.MakeDebtPayment(uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, ledger.ErrDebtNotFound)

	suite.Require().NoError(suite.store.DeleteCategory(suite.indexOf(models.DebtCategory)))
	_, _, err = suite.store.MakeDebtPayment(debt.ID, decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, ledger.ErrCategoryNotFound)

	stored, _ := suite.store.Debt(debt.ID)
	suite.Assert().True(stored.PaidAmount.IsZero())
	suite.Assert().Empty(suite.store.Transactions())
}

func (suite *StoreSuite) TestDebtLifecycle() {
	debt := suite.debt("1000", "100")

	debt.PaidAmount = decimal.NewFromInt(50)
	_, err := suite.store.UpdateDebt(debt)
	suite.Assert().ErrorIs(err, ledger.ErrProgressDecrease)

	debt.PaidAmount = decimal.NewFromInt(1100)
	_, err = suite.store.UpdateDebt(debt)
	suite.Assert().ErrorIs(err, models.ErrDebtPaidOutOfRange)

	debt.PaidAmount = decimal.NewFromInt(100)
	debt.InterestRate = decimal.RequireFromString("4.5")
	updated, err := suite.store.UpdateDebt(debt)
	suite.Require().NoError(err)
	suite.assertDecimal("4.5", updated.InterestRate)

	_, err = suite.store.UpdateDebt(models.Debt{ID: uuid.New(), DebtCreate: debt.DebtCreate})
	suite.Assert().ErrorIs(err, ledger.ErrDebtNotFound)

	suite.Require().NoError(suite.store.DeleteDebt(debt.ID))
	suite.Assert().ErrorIs(suite.store.DeleteDebt(debt.ID), ledger.ErrDebtNotFound)
	suite.Assert().Empty(suite.store.Debts())
}
