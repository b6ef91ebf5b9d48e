package v1

import (
	"bytes"
	"net/http"

	"github.com/finiq/backend/internal/budget"
	"github.com/finiq/backend/internal/chart"
	"github.com/finiq/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterBudgetRoutes registers the routes for the budget maker with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", co.OptionsBudgetCategories)
	r.GET("/categories", co.GetBudgetCategories)

	r.OPTIONS("/allocations", co.OptionsBudgetAllocations)
	r.POST("/allocations", co.CreateBudgetAllocation)

	r.OPTIONS("/chart", co.OptionsBudgetChart)
	r.POST("/chart", co.CreateBudgetChart)

	r.OPTIONS("/sample", co.OptionsBudgetSample)
	r.GET("/sample", co.GetBudgetSample)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget/categories [options]
func (co Controller) OptionsBudgetCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get expense categories
// @Description	Returns the expense categories in the order they are shown
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/budget/categories [get]
func (co Controller) GetBudgetCategories(c *gin.Context) {
	categories := make([]Category, 0)
	for _, cat := range budget.Categories() {
		categories = append(categories, Category{
			Key:   cat.Key(),
			Label: cat.Label(),
			Color: cat.Color(),
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget/allocations [options]
func (co Controller) OptionsBudgetAllocations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allocate a budget
// @Description	Splits income into expenses, loan payments and the surplus buckets.
// @Description	Negative amounts count as zero. If the breakdown is empty, fallback is set and a message explains what to review.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Param			budget	body		BudgetInput	true	"Budget"
// @Router			/v1/budget/allocations [post]
func (co Controller) CreateBudgetAllocation(c *gin.Context) {
	var input BudgetInput
	if err := httputil.BindData(c, &input); err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	in := input.model()
	summary := budget.Summarize(in)
	allocation := newAllocation(in, budget.Allocate(in))
	allocation.Summary = &summary

	c.JSON(http.StatusOK, AllocationResponse{Data: &allocation})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget/chart [options]
func (co Controller) OptionsBudgetChart(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Render a budget chart
// @Description	Renders the allocation of the budget as a PNG pie chart
// @Tags			Budget
// @Accept			json
// @Produce		png
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		422		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetInput	true	"Budget"
// @Router			/v1/budget/chart [post]
func (co Controller) CreateBudgetChart(c *gin.Context) {
	var input BudgetInput
	if err := httputil.BindData(c, &input); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var buf bytes.Buffer
	err := chart.RenderPie(&buf, budget.Allocate(input.model()))
	if err != nil {
		code := status(err)
		if code == http.StatusBadRequest {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			code = http.StatusInternalServerError
		}

		httputil.NewError(c, code, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget/sample [options]
func (co Controller) OptionsBudgetSample(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get a sample budget
// @Description	Returns the sample breakdown scaled to the income. Without a positive income, the sample is for an income of 4000.
// @Tags			Budget
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Param			income	query		string	false	"Monthly income"
// @Router			/v1/budget/sample [get]
func (co Controller) GetBudgetSample(c *gin.Context) {
	in := budget.NewInput()
	in.SetIncome(budget.ParseAmount(c.Query("income")))

	allocation := newAllocation(in, budget.SampleBudget(in.Income))

	c.JSON(http.StatusOK, AllocationResponse{Data: &allocation})
}
