package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite provides a test suite for end-to-end tests
type E2ETestSuite struct {
	suite.Suite
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	expect  playwright.PlaywrightAssertions
}

// SetupSuite runs once before all tests
func (suite *E2ETestSuite) SetupSuite() {
	pw, err := playwright.Run()
	require.NoError(suite.T(), err, "could not launch playwright")
	suite.pw = pw

	browser, err := pw.Chromium.Launch()
	require.NoError(suite.T(), err, "could not launch chromium")
	suite.browser = browser

	suite.expect = playwright.NewPlaywrightAssertions()
}

// TearDownSuite runs once after all tests
func (suite *E2ETestSuite) TearDownSuite() {
	if suite.browser != nil {
		suite.browser.Close()
	}
	if suite.pw != nil {
		suite.pw.Stop()
	}
}

// SetupTest runs before each test
func (suite *E2ETestSuite) SetupTest() {
	page, err := suite.browser.NewPage()
	require.NoError(suite.T(), err, "could not create page")
	suite.page = page

	_, err = suite.page.Goto(appURL + "/register")
	require.NoError(suite.T(), err, "could not navigate to app")
}

// TearDownTest runs after each test
func (suite *E2ETestSuite) TearDownTest() {
	if suite.page != nil {
		suite.page.Close()
	}
}

func (suite *E2ETestSuite) registerAndLogin(username, password string) {
	// Register
	err := suite.expect.Locator(suite.page.Locator(".register-form")).ToBeVisible()
	require.NoError(suite.T(), err, "register form not visible")

	require.NoError(suite.T(), suite.page.Locator("input[name=username]").Fill(username))
	require.NoError(suite.T(), suite.page.Locator("input[name=password]").Fill(password))
	require.NoError(suite.T(), suite.page.Locator("input[name=confirm_password]").Fill(password))
	require.NoError(suite.T(), suite.page.Locator(".register-btn").Click())

	// Landed on login with a success notice
	err = suite.expect.Locator(suite.page.Locator(".flash-success")).ToContainText("Registration successful")
	require.NoError(suite.T(), err, "registration notice not shown")

	// Login
	require.NoError(suite.T(), suite.page.Locator("input[name=username]").Fill(username))
	require.NoError(suite.T(), suite.page.Locator("input[name=password]").Fill(password))
	require.NoError(suite.T(), suite.page.Locator(".login-btn").Click())

	err = suite.expect.Locator(suite.page.Locator(".dashboard")).ToBeVisible()
	require.NoError(suite.T(), err, "did not land on the dashboard after login")
}

func (suite *E2ETestSuite) TestCompleteUserFlow() {
	suite.registerAndLogin("alice", "secret1")

	// Create Expense
	require.NoError(suite.T(), suite.page.Locator(".add-btn").Click())

	err := suite.expect.Locator(suite.page.Locator("#expense-form")).ToBeVisible()
	require.NoError(suite.T(), err, "expense form not visible")

	require.NoError(suite.T(), suite.page.Locator("input[name=amount]").Fill("12.50"))
	_, err = suite.page.Locator("select[name=category]").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Food"},
	})
	require.NoError(suite.T(), err, "failed to select category")
	require.NoError(suite.T(), suite.page.Locator("input[name=description]").Fill("Lunch Test"))
	require.NoError(suite.T(), suite.page.Locator("button.submit").Click())

	// Dashboard shows the new expense and the total
	err = suite.expect.Locator(suite.page.Locator(".flash-success")).ToContainText("Expense added successfully")
	require.NoError(suite.T(), err, "expense notice not shown")

	err = suite.expect.Locator(suite.page.Locator(".expense-row")).ToHaveCount(1)
	require.NoError(suite.T(), err, "expense row count mismatch")

	err = suite.expect.Locator(suite.page.Locator(".expense-row")).ToContainText("Lunch Test")
	require.NoError(suite.T(), err, "description mismatch")

	err = suite.expect.Locator(suite.page.Locator(".summary")).ToContainText("12.50")
	require.NoError(suite.T(), err, "total mismatch")

	// Reports agree
	_, err = suite.page.Goto(appURL + "/reports")
	require.NoError(suite.T(), err)

	err = suite.expect.Locator(suite.page.Locator(".report-table")).ToContainText("Food")
	require.NoError(suite.T(), err, "category missing from report")

	err = suite.expect.Locator(suite.page.Locator(".report-table")).ToContainText("12.50")
	require.NoError(suite.T(), err, "report total mismatch")
}

// TestE2ESuite runs the e2e test suite
func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}
