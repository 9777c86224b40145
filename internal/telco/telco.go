package telco

import (
	"math"

	"insightcli/internal/dataset"
	"insightcli/internal/features"
	"insightcli/internal/synth"
)

// RawFileName is the Kaggle export name the analysis expects under the
// raw data directory.
const RawFileName = "WA_Fn-UseC_-Telco-Customer-Churn.csv"

// ServiceColumns are the nine subscription columns counted into
// Service_Count. Each holds "Yes", "No", or a "No … service" marker.
var ServiceColumns = []string{
	"PhoneService", "MultipleLines", "InternetService",
	"OnlineSecurity", "OnlineBackup", "DeviceProtection",
	"TechSupport", "StreamingTV", "StreamingMovies",
}

// RequiredColumns are the columns the analysis reads.
var RequiredColumns = []string{
	"customerID", "gender", "SeniorCitizen", "Partner", "Dependents",
	"tenure", "PhoneService", "MultipleLines", "InternetService",
	"OnlineSecurity", "OnlineBackup", "DeviceProtection", "TechSupport",
	"StreamingTV", "StreamingMovies", "Contract", "PaperlessBilling",
	"PaymentMethod", "MonthlyCharges", "TotalCharges", "Churn",
}

var (
	tenureBins = features.Bins{
		Edges:         []float64{0, 12, 24, 48, math.Inf(1)},
		Labels:        []string{"New (0-12m)", "Growing (13-24m)", "Mature (25-48m)", "Loyal (48m+)"},
		IncludeLowest: true,
	}
	riskBins = features.Bins{
		Edges:  []float64{-1, 2, 4, 8},
		Labels: []string{"Low Risk", "Medium Risk", "High Risk"},
	}
)

// ContractTypes in ascending commitment order, used as fixed heat map
// columns.
var ContractTypes = []string{"Month-to-month", "One year", "Two year"}

func yesNoNoService(service string) synth.Generator {
	return synth.Categorical(
		[]string{"Yes", "No", "No " + service + " service"},
		[]float64{0.28, 0.5, 0.22})
}

// SynthSpec describes the demo dataset used when the Kaggle export is
// missing: 1000 customers with category weights shaped like the real
// dataset's marginals.
func SynthSpec() synth.Spec {
	return synth.Spec{
		Rows: 1000,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "customerID", Gen: synth.Pattern("CUST-%d", 1)},
			{Name: "gender", Gen: synth.CategoricalUniform([]string{"Female", "Male"})},
			{Name: "SeniorCitizen", Gen: synth.IntChoice([]int{0, 1}, []float64{0.84, 0.16})},
			{Name: "Partner", Gen: synth.Categorical([]string{"Yes", "No"}, []float64{0.48, 0.52})},
			{Name: "Dependents", Gen: synth.Categorical([]string{"Yes", "No"}, []float64{0.3, 0.7})},
			{Name: "tenure", Gen: synth.UniformInt(0, 73)},
			{Name: "PhoneService", Gen: synth.Categorical([]string{"Yes", "No"}, []float64{0.9, 0.1})},
			{Name: "MultipleLines", Gen: synth.Categorical(
				[]string{"Yes", "No", "No phone service"},
				[]float64{0.42, 0.48, 0.1})},
			{Name: "InternetService", Gen: synth.Categorical(
				[]string{"DSL", "Fiber optic", "No"},
				[]float64{0.34, 0.44, 0.22})},
			{Name: "OnlineSecurity", Gen: yesNoNoService("internet")},
			{Name: "OnlineBackup", Gen: yesNoNoService("internet")},
			{Name: "DeviceProtection", Gen: yesNoNoService("internet")},
			{Name: "TechSupport", Gen: yesNoNoService("internet")},
			{Name: "StreamingTV", Gen: yesNoNoService("internet")},
			{Name: "StreamingMovies", Gen: yesNoNoService("internet")},
			{Name: "Contract", Gen: synth.Categorical(ContractTypes, []float64{0.55, 0.21, 0.24})},
			{Name: "PaperlessBilling", Gen: synth.Categorical([]string{"Yes", "No"}, []float64{0.59, 0.41})},
			{Name: "PaymentMethod", Gen: synth.Categorical(
				[]string{"Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"},
				[]float64{0.34, 0.23, 0.22, 0.21})},
			{Name: "MonthlyCharges", Gen: synth.UniformFloat(18.25, 118.75)},
			{Name: "TotalCharges", Gen: synth.UniformFloat(18.8, 8684.8)},
			{Name: "Churn", Gen: synth.Categorical([]string{"Yes", "No"}, []float64{0.27, 0.73})},
		},
	}
}

// Clean coerces the free-text TotalCharges column to numeric (blank is
// missing, then median-filled) and removes exact duplicate rows.
func Clean(ds *dataset.Dataset) *dataset.Dataset {
	return ds.
		CoerceNumeric("TotalCharges").
		FillMedian("TotalCharges").
		DropDuplicates()
}

// riskRow carries the fields the churn risk rules look at.
type riskRow struct {
	Contract        string
	Tenure          float64
	MonthlyCharges  float64
	InternetService string
	PaymentMethod   string
}

// riskRules is the fixed churn risk rule table. The charges threshold is
// the runtime 75th percentile of MonthlyCharges.
func riskRules(chargesP75 float64) []features.Rule[riskRow] {
	return []features.Rule[riskRow]{
		{Name: "month_to_month_contract", Points: 3, When: func(r riskRow) bool { return r.Contract == "Month-to-month" }},
		{Name: "one_year_contract", Points: 1, When: func(r riskRow) bool { return r.Contract == "One year" }},
		{Name: "short_tenure", Points: 2, When: func(r riskRow) bool { return r.Tenure <= 12 }},
		{Name: "high_charges", Points: 1, When: func(r riskRow) bool { return r.MonthlyCharges > chargesP75 }},
		{Name: "fiber_optic", Points: 1, When: func(r riskRow) bool { return r.InternetService == "Fiber optic" }},
		{Name: "electronic_check", Points: 1, When: func(r riskRow) bool { return r.PaymentMethod == "Electronic check" }},
	}
}

// Engineer appends the derived churn features in their prescribed
// order; Risk_Category depends on Risk_Score, which depends on the
// runtime charges percentile.
func Engineer(ds *dataset.Dataset) *dataset.Dataset {
	if ds.Err() != nil {
		return ds
	}

	n := ds.NRows()
	senior := ds.Float("SeniorCitizen")
	tenure := ds.Float("tenure")
	monthly := ds.Float("MonthlyCharges")
	total := ds.Float("TotalCharges")
	contract := ds.Strings("Contract")
	internet := ds.Strings("InternetService")
	payment := ds.Strings("PaymentMethod")
	partner := ds.Strings("Partner")
	dependents := ds.Strings("Dependents")
	streamingTV := ds.Strings("StreamingTV")
	streamingMovies := ds.Strings("StreamingMovies")

	chargesP75 := features.Percentile(monthly, 0.75)

	isSenior := make([]string, n)
	highCharges := make([]string, n)
	familyStatus := make([]string, n)
	internetStreaming := make([]string, n)
	serviceCount := make([]int, n)
	riskScore := make([]int, n)
	riskLabel := make([]string, n)

	services := make([][]string, len(ServiceColumns))
	for i, col := range ServiceColumns {
		services[i] = ds.Strings(col)
	}

	rules := riskRules(chargesP75)
	for i := 0; i < n; i++ {
		isSenior[i] = features.YesNo(senior[i] == 1)
		highCharges[i] = features.YesNo(monthly[i] >= chargesP75)
		familyStatus[i] = features.YesNo(partner[i] == "Yes" || dependents[i] == "Yes")
		internetStreaming[i] = features.YesNo(internet[i] != "No" &&
			(streamingTV[i] == "Yes" || streamingMovies[i] == "Yes"))

		for _, svc := range services {
			if svc[i] == "Yes" {
				serviceCount[i]++
			}
		}

		score := features.Score(riskRow{
			Contract:        contract[i],
			Tenure:          tenure[i],
			MonthlyCharges:  monthly[i],
			InternetService: internet[i],
			PaymentMethod:   payment[i],
		}, rules)
		riskScore[i] = score
		riskLabel[i] = riskBins.Label(float64(score))
	}

	return ds.
		WithStringColumn("Is_Senior", isSenior).
		WithStringColumn("Tenure_Group", features.Cut(tenure, tenureBins)).
		WithStringColumn("High_Charges", highCharges).
		WithIntColumn("Service_Count", serviceCount).
		WithFloatColumn("Monthly_to_Total_Ratio", features.GuardedRatio(monthly, total)).
		WithStringColumn("Has_Partner_Dependents", familyStatus).
		WithStringColumn("Internet_Plus_Streaming", internetStreaming).
		WithIntColumn("Risk_Score", riskScore).
		WithStringColumn("Risk_Category", riskLabel)
}
