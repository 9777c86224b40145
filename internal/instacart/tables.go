package instacart

import (
	"log/slog"
	"os"

	"insightcli/internal/config"
	"insightcli/internal/dataset"
	"insightcli/internal/synth"
)

// Input file names under the raw data directory. The analysis needs all
// five; a partially present set falls back to the simulated tables as a
// whole so the joins stay consistent.
const (
	OrdersFile        = "orders.csv"
	ProductsFile      = "products.csv"
	OrderProductsFile = "order_products__prior.csv"
	DepartmentsFile   = "departments.csv"
	AislesFile        = "aisles.csv"
)

var (
	ordersColumns = []string{
		"order_id", "user_id", "order_number", "order_dow",
		"order_hour_of_day", "days_since_prior_order",
	}
	productsColumns      = []string{"product_id", "product_name", "aisle_id", "department_id"}
	orderProductsColumns = []string{"order_id", "product_id", "add_to_cart_order", "reordered"}
	departmentsColumns   = []string{"department_id", "department"}
	aislesColumns        = []string{"aisle_id", "aisle"}
)

// departmentNames is the fixed simulated department lookup.
var departmentNames = []string{
	"snacks", "cookies cakes", "candy chocolate", "chips pretzels",
	"beverages", "dairy eggs", "produce", "meat seafood", "bakery",
	"frozen", "pantry",
}

// productNames is the 20-name pool cycled to 200 simulated products.
var productNames = []string{
	"Organic Banana", "Bag of Organic Bananas", "Organic Strawberries",
	"Organic Baby Spinach", "Organic Hass Avocado", "Organic Avocado",
	"Large Lemon", "Strawberries", "Lime", "Organic Whole Milk",
	"Organic Raspberries", "Organic Yellow Onion", "Organic Garlic",
	"Banana", "Organic Fuji Apple", "Organic Lemon", "Apple Honeycrisp",
	"Honeycrisp Apple", "Organic Blueberries", "Cucumber Kirby",
}

// Tables holds the five input tables of the basket analysis.
type Tables struct {
	Orders        *dataset.Dataset
	Products      *dataset.Dataset
	OrderProducts *dataset.Dataset
	Departments   *dataset.Dataset
	Aisles        *dataset.Dataset
}

func ordersSpec() synth.Spec {
	return synth.Spec{
		Rows: 2000,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "order_id", Gen: synth.Sequence(1)},
			{Name: "user_id", Gen: synth.UniformInt(1, 401)},
			{Name: "order_number", Gen: synth.UniformInt(1, 25)},
			{Name: "order_dow", Gen: synth.UniformInt(0, 7)},
			{Name: "order_hour_of_day", Gen: synth.UniformInt(6, 23)},
			{Name: "days_since_prior_order", Gen: synth.FloatChoice(synth.MissingRange(1, 34))},
		},
	}
}

func productsSpec() synth.Spec {
	return synth.Spec{
		Rows: 200,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "product_id", Gen: synth.Sequence(1)},
			{Name: "product_name", Gen: synth.Cycle(productNames)},
			{Name: "aisle_id", Gen: synth.UniformInt(1, 31)},
			{Name: "department_id", Gen: synth.UniformInt(1, 12)},
		},
	}
}

func orderProductsSpec() synth.Spec {
	return synth.Spec{
		Rows: 8000,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "order_id", Gen: synth.UniformInt(1, 2001)},
			{Name: "product_id", Gen: synth.UniformInt(1, 201)},
			{Name: "add_to_cart_order", Gen: synth.UniformInt(1, 15)},
			{Name: "reordered", Gen: synth.IntChoice([]int{0, 1}, []float64{0.35, 0.65})},
		},
	}
}

func departmentsSpec() synth.Spec {
	return synth.Spec{
		Rows: 11,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "department_id", Gen: synth.Sequence(1)},
			{Name: "department", Gen: synth.Cycle(departmentNames)},
		},
	}
}

func aislesSpec() synth.Spec {
	return synth.Spec{
		Rows: 30,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "aisle_id", Gen: synth.Sequence(1)},
			{Name: "aisle", Gen: synth.Pattern("aisle_%d", 1)},
		},
	}
}

// LoadTables reads the five input tables, or simulates all of them when
// any file is missing. The returned bool reports whether simulated data
// was used.
func LoadTables(logger *slog.Logger, paths *config.Paths) (*Tables, bool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files := []string{OrdersFile, ProductsFile, OrderProductsFile, DepartmentsFile, AislesFile}
	allPresent := true
	for _, f := range files {
		if _, err := os.Stat(paths.RawFile(f)); err != nil {
			allPresent = false
			break
		}
	}

	if allPresent {
		t := &Tables{}
		var err error
		if t.Orders, err = dataset.Load(paths.RawFile(OrdersFile), ordersColumns); err != nil {
			return nil, false, err
		}
		if t.Products, err = dataset.Load(paths.RawFile(ProductsFile), productsColumns); err != nil {
			return nil, false, err
		}
		if t.OrderProducts, err = dataset.Load(paths.RawFile(OrderProductsFile), orderProductsColumns); err != nil {
			return nil, false, err
		}
		if t.Departments, err = dataset.Load(paths.RawFile(DepartmentsFile), departmentsColumns); err != nil {
			return nil, false, err
		}
		if t.Aisles, err = dataset.Load(paths.RawFile(AislesFile), aislesColumns); err != nil {
			return nil, false, err
		}
		logger.Info("loaded basket tables",
			slog.Int("orders", t.Orders.NRows()),
			slog.Int("products", t.Products.NRows()),
			slog.Int("order_products", t.OrderProducts.NRows()))
		return t, false, nil
	}

	logger.Warn("basket tables incomplete, simulating demo tables",
		slog.String("raw_dir", paths.RawDir))

	t := &Tables{}
	for _, build := range []struct {
		spec synth.Spec
		dst  **dataset.Dataset
	}{
		{ordersSpec(), &t.Orders},
		{productsSpec(), &t.Products},
		{orderProductsSpec(), &t.OrderProducts},
		{departmentsSpec(), &t.Departments},
		{aislesSpec(), &t.Aisles},
	} {
		df, err := synth.Build(build.spec)
		if err != nil {
			return nil, false, err
		}
		*build.dst = dataset.New(df)
	}
	return t, true, nil
}
