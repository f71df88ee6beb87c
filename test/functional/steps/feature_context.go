package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"form-server/internal/forms/httpapi"
	"form-server/internal/forms/persistence"
	"form-server/internal/forms/usecases"
	"form-server/internal/infra/httpserver"
	"form-server/internal/infra/pubsub"
	"form-server/internal/infra/sql"
	"form-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

var scenarioCounter atomic.Int64

type FeatureContext struct {
	server           *httptest.Server
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	formID           string
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the response message should be "([^"]*)"$`, fc.theResponseMessageShouldBe)

	// Health steps
	ctx.When(`^I call the health endpoint$`, fc.iCallTheHealthEndpoint)
	ctx.Then(`^the response should report the server is running$`, fc.theResponseShouldReportTheServerIsRunning)

	// Form steps
	ctx.Given(`^a form exists with name "([^"]*)"$`, fc.aFormExistsWithName)
	ctx.When(`^I create a form named "([^"]*)" with a required "([^"]*)" field of type "([^"]*)"$`, fc.iCreateAFormWithARequiredField)
	ctx.When(`^I create a form named "([^"]*)" without fields$`, fc.iCreateAFormWithoutFields)
	ctx.When(`^I create a form named "([^"]*)" with a field of type "([^"]*)"$`, fc.iCreateAFormWithAFieldOfType)
	ctx.When(`^I get the form by its ID$`, fc.iGetTheFormByItsID)
	ctx.When(`^I get a form that was never created$`, fc.iGetAFormThatWasNeverCreated)
	ctx.When(`^I list all forms$`, fc.iListAllForms)
	ctx.When(`^I update the form with the name "([^"]*)"$`, fc.iUpdateTheFormWithTheName)
	ctx.When(`^I delete the form$`, fc.iDeleteTheForm)
	ctx.Then(`^the response should contain the form details$`, fc.theResponseShouldContainTheFormDetails)
	ctx.Then(`^the response should contain the form with name "([^"]*)"$`, fc.theResponseShouldContainTheFormWithName)
	ctx.Then(`^the form should be visible and not read-only$`, fc.theFormShouldBeVisibleAndNotReadOnly)
	ctx.Then(`^the form fields should be:$`, fc.theFormFieldsShouldBe)
	ctx.Then(`^the list should contain the form with name "([^"]*)"$`, fc.theListShouldContainTheFormWithName)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		if err := fc.startServer(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if fc.server != nil {
			fc.server.Close()
			fc.server = nil
		}
		return ctx, err
	})
}

// startServer serves the whole HTTP stack in process on a fresh in-memory database.
func (fc *FeatureContext) startServer() error {
	orm, err := sql.NewMemoryORM(fmt.Sprintf("functional_forms_%d", scenarioCounter.Add(1)))
	if err != nil {
		return err
	}

	repository, err := persistence.NewFormRepository(pubsub.NewMemoryPublisherFactory(), orm)
	if err != nil {
		return err
	}

	server := httpserver.NewServer(
		httpserver.ServerConfig{Port: httpserver.DefaultPort},
		httpserver.NewMemoryRateLimiter(httpserver.RateLimitConfig{Window: time.Minute, Max: 10000}),
		map[string]httpserver.Pinger{"database": orm},
		httpapi.NewFormController(usecases.NewFormService(repository)),
	)

	fc.server = httptest.NewServer(server.Handler())
	fc.apiDriver = driver.NewAPIDriver(fc.server.URL, fc.server.Client())
	return nil
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.formID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}
