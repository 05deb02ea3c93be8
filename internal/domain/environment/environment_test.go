package environment

import (
	"strings"
	"testing"

	"github.com/riskibarqy/match-center/internal/platform/payload"
)

func TestWindCategory_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mph  float64
		want string
	}{
		{0.5, "Calm"},
		{3.9, "Light Air"},
		{4.0, "Light Breeze"},
		{12.9, "Gentle Breeze"},
		{13.0, "Moderate Breeze"},
		{31.9, "Strong Breeze"},
		{46.9, "Gale"},
		{72.9, "Violent Storm"},
		{73.0, "Hurricane"},
		{120, "Hurricane"},
	}
	for _, tc := range cases {
		if got := WindCategory(tc.mph); got != tc.want {
			t.Errorf("WindCategory(%v): got=%q want=%q", tc.mph, got, tc.want)
		}
	}
}

func TestDescribeWeather(t *testing.T) {
	t.Parallel()

	if got := DescribeWeather(float64(1)); got != "Sunny" {
		t.Errorf("code 1: got=%q", got)
	}
	if got := DescribeWeather("7"); got != "Rain" {
		t.Errorf("string code 7: got=%q", got)
	}
	if got := DescribeWeather(float64(42)); got != "Unknown (42)" {
		t.Errorf("unknown code: got=%q", got)
	}
	if got := DescribeWeather(nil); !strings.HasPrefix(got, "Unknown") {
		t.Errorf("nil code: got=%q", got)
	}
}

func TestInterpret(t *testing.T) {
	t.Parallel()

	raw := payload.Object{
		"weather":     "2",
		"temperature": "21°C",
		"wind":        "3.4 m/s",
		"pressure":    "1013 hPa",
		"humidity":    "64%",
	}

	r := Interpret(raw)
	if r.Weather != 2 || r.WeatherDescription != "Partly Cloudy" {
		t.Fatalf("weather: %v %q", r.Weather, r.WeatherDescription)
	}
	if r.TemperatureValue == nil || *r.TemperatureValue != 21 || r.TemperatureUnit != "°C" {
		t.Fatalf("temperature: %+v unit=%q", r.TemperatureValue, r.TemperatureUnit)
	}
	if r.WindValue == nil || *r.WindValue != 3.4 {
		t.Fatalf("wind value: %+v", r.WindValue)
	}
	// 3.4 m/s is 7.6 mph, inside Light Breeze.
	if r.WindDescription != "Light Breeze" {
		t.Fatalf("wind description: %q", r.WindDescription)
	}
	if r.PressureValue == nil || *r.PressureValue != 1013 {
		t.Fatalf("pressure: %+v", r.PressureValue)
	}
}

func TestInterpret_UnparseableReadings(t *testing.T) {
	t.Parallel()

	r := Interpret(payload.Object{
		"weather":     "stormy",
		"temperature": "mild",
		"wind":        nil,
	})
	if r.TemperatureValue != nil {
		t.Fatalf("unparseable temperature should stay nil: %v", *r.TemperatureValue)
	}
	if r.WindValue != nil {
		t.Fatal("missing wind should stay nil")
	}
	if r.WindDescription != "Calm" {
		t.Fatalf("missing wind defaults to Calm: %q", r.WindDescription)
	}
	if !strings.HasPrefix(r.WeatherDescription, "Unknown") {
		t.Fatalf("weather description: %q", r.WeatherDescription)
	}

	empty := Interpret(nil)
	if empty.Raw == nil {
		t.Fatal("raw block must be non-nil")
	}
}

func TestFormatConditions_CelsiusShowsOneDecimalFahrenheit(t *testing.T) {
	t.Parallel()

	r := Interpret(payload.Object{
		"weather":     "1",
		"temperature": "21°C",
		"wind":        "3.4 m/s",
	})
	got := FormatConditions(r)
	if !strings.Contains(got, "Temperature: 69.8°F") {
		t.Fatalf("fahrenheit conversion missing: %q", got)
	}
	if !strings.Contains(got, "Wind: Light Breeze, 7.6 mph") {
		t.Fatalf("wind line: %q", got)
	}

	if got := FormatConditions(Reading{}); got != "No environment data available" {
		t.Fatalf("empty reading: %q", got)
	}
}

func TestBuildReport_IntegerFahrenheit(t *testing.T) {
	t.Parallel()

	report := BuildReport(payload.Object{
		"weather":     "6",
		"temperature": "21",
		"wind":        "5.0",
		"pressure":    "1013",
		"humidity":    "64",
	})
	if report.Weather != "Light Rain" {
		t.Fatalf("weather: %q", report.Weather)
	}
	// 21C is 69.8F; the report path rounds to the nearest degree.
	if report.Temperature != "21°C (70°F)" {
		t.Fatalf("temperature: %q", report.Temperature)
	}
	if !strings.Contains(report.Wind, "Light Breeze") {
		t.Fatalf("wind: %q", report.Wind)
	}
	if report.Pressure != "1013 hPa" || report.Humidity != "64%" {
		t.Fatalf("pressure/humidity: %q %q", report.Pressure, report.Humidity)
	}

	empty := BuildReport(nil)
	if empty.Temperature != "Unknown" || empty.Wind != "Unknown" {
		t.Fatalf("empty report: %+v", empty)
	}
}
