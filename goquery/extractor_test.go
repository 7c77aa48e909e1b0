package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/carcheck"
	"github.com/fwojciec/carcheck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vehiclePage = `<!DOCTYPE html>
<html>
<body>
<div class="vehicle-details">
	<h2 class="vehicle-title">
		2012 Toyota   Corolla
	</h2>
	<div class="d-flex flex-wrap">
		<span>Year: 2012</span>
		<span>  Engine :  1.4 Diesel </span>
		<span>Model Year</span>
		<span>Note: see: below</span>
		<span>Colour:
			Silver</span>
	</div>
</div>
</body>
</html>`

func TestDetailsExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and well-formed details", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(vehiclePage))

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "\n2012 Toyota Corolla\nYear: 2012\nEngine: 1.4 Diesel\nColour: Silver", result.Details)
		assert.Empty(t, result.Raw)
	})

	t.Run("output has one line per detail plus title", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(vehiclePage))

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(result.Details, "\n"))
		assert.False(t, strings.HasSuffix(result.Details, "\n"))
		lines := strings.Split(strings.TrimPrefix(result.Details, "\n"), "\n")
		assert.Len(t, lines, 4)
	})

	t.Run("discards entries with zero or several colons", func(t *testing.T) {
		t.Parallel()

		html := `<div class="vehicle-details"><h1 class="vehicle-title">Ford Focus</h1></div>
<div class="d-flex flex-wrap">
	<span>Model Year</span>
	<span>Note: see: below</span>
	<span>Time: 10:30</span>
</div>`
		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(html))

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "\nFord Focus", result.Details)
	})

	t.Run("last kept line has no trailing newline when later spans are discarded", func(t *testing.T) {
		t.Parallel()

		html := `<div class="vehicle-details"><h1 class="vehicle-title">VW Golf</h1></div>
<div class="d-flex flex-wrap"><span>Fuel: Petrol</span><span>Imported</span></div>`
		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(html))

		require.NoError(t, err)
		assert.Equal(t, "\nVW Golf\nFuel: Petrol", result.Details)
	})

	t.Run("ignores spans outside the details container", func(t *testing.T) {
		t.Parallel()

		html := `<div class="vehicle-details"><h1 class="vehicle-title">VW Golf</h1></div>
<span>Cookie: accepted</span>
<div class="d-flex"><span>Owners: 2</span></div>
<div class="d-flex flex-wrap"><span>Fuel: Petrol</span></div>`
		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(html))

		require.NoError(t, err)
		assert.Equal(t, "\nVW Golf\nFuel: Petrol", result.Details)
	})

	t.Run("returns original text when title is absent", func(t *testing.T) {
		t.Parallel()

		page := "<!DOCTYPE html>\n<html><body><p>No results for 99X1</p>\n<div class=\"d-flex flex-wrap\"><span>Year: 2012</span></div></body></html>"
		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(page))

		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Equal(t, page, result.Raw)
		assert.Equal(t, page, result.Text())
		assert.True(t, carcheck.IsNotFoundText(result.Text()))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div class="vehicle-details"><h1 class="vehicle-title">Audi A4<div class="d-flex flex-wrap"><span>Year: 2019<span>Fuel: Diesel`
		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte(html))

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.True(t, strings.HasPrefix(result.Details, "\nAudi A4"))
	})

	t.Run("treats invalid UTF-8 as empty page", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewDetailsExtractor()

		result, err := e.Extract([]byte{0xff, 0xfe, '<', 'p', '>'})

		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Empty(t, result.Text())
	})

	t.Run("uses custom selectors", func(t *testing.T) {
		t.Parallel()

		html := `<h1 id="car">Mazda 3</h1><ul><li>Year: 2015</li><li>Doors: 5</li></ul>`
		e := goquery.NewDetailsExtractor(goquery.WithSelectors("#car", "ul li"))

		result, err := e.Extract([]byte(html))

		require.NoError(t, err)
		assert.Equal(t, "\nMazda 3\nYear: 2015\nDoors: 5", result.Details)
	})
}
