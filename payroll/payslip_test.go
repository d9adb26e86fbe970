package payroll

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayslipJSON(t *testing.T) {
	calc := NewCalculator(DefaultRateTables())

	p, err := calc.Calculate(d("3500.00"), "standard")
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var out map[string]interface{}
	require.NoError(t, decoder.Decode(&out))

	assert.Equal(t, json.Number("3500.00"), out["gross_salary"])
	assert.Equal(t, "standard", out["employee_type"])
	assert.Equal(t, json.Number("292.25"), out["employee_total"])
	assert.Equal(t, json.Number("8.35"), out["employee_rate_percent"])
	assert.Equal(t, json.Number("3207.75"), out["net_salary"])
	assert.Equal(t, json.Number("1282.75"), out["employer_total"])
	assert.Equal(t, json.Number("36.65"), out["employer_rate_percent"])
	assert.Equal(t, json.Number("4782.75"), out["total_employer_cost"])
	assert.Equal(t, json.Number("1575.00"), out["total_contributions"])

	employee, ok := out["employee_contributions"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, json.Number("126.00"), employee["maladie"])
	assert.Equal(t, json.Number("292.25"), employee["total"])

	employer, ok := out["employer_contributions"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, json.Number("17.50"), employer["formation_prof"])
	assert.Equal(t, json.Number("1282.75"), employer["total"])

	date, ok := out["calculation_date"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, date)
	assert.NoError(t, err)
}
