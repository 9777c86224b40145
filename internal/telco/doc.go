// Package telco implements the customer churn case study: clean the
// telco billing export, engineer a rule-based churn risk score, and
// report churn rates per contract, tenure, and risk segment.
package telco
