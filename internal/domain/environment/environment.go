// Package environment interprets the provider's raw pitch-side readings:
// weather codes, temperature, wind, pressure and humidity.
package environment

import (
	"fmt"
	"math"
	"strings"

	"github.com/riskibarqy/match-center/internal/platform/payload"
)

// Reading is the parsed environment block on a match summary. Value
// pointers are nil when the source reading could not be parsed as a number.
type Reading struct {
	Raw                payload.Object `json:"raw"`
	Weather            any            `json:"weather"`
	WeatherDescription string         `json:"weather_description"`

	Temperature      any      `json:"temperature"`
	TemperatureValue *float64 `json:"temperature_value"`
	TemperatureUnit  string   `json:"temperature_unit"`

	Wind            any      `json:"wind"`
	WindValue       *float64 `json:"wind_value"`
	WindUnit        string   `json:"wind_unit"`
	WindDescription string   `json:"wind_description"`

	Pressure      any      `json:"pressure"`
	PressureValue *float64 `json:"pressure_value"`
	PressureUnit  string   `json:"pressure_unit"`

	Humidity      any      `json:"humidity"`
	HumidityValue *float64 `json:"humidity_value"`
	HumidityUnit  string   `json:"humidity_unit"`
}

var weatherNames = map[int]string{
	1:  "Sunny",
	2:  "Partly Cloudy",
	3:  "Cloudy",
	4:  "Overcast",
	5:  "Foggy",
	6:  "Light Rain",
	7:  "Rain",
	8:  "Heavy Rain",
	9:  "Snow",
	10: "Thunder",
}

// windScale maps an exclusive mph upper bound to a Beaufort-style label.
// A value equal to a bound falls into the next category.
var windScale = []struct {
	limit float64
	label string
}{
	{1, "Calm"},
	{4, "Light Air"},
	{8, "Light Breeze"},
	{13, "Gentle Breeze"},
	{19, "Moderate Breeze"},
	{25, "Fresh Breeze"},
	{32, "Strong Breeze"},
	{39, "Near Gale"},
	{47, "Gale"},
	{55, "Strong Gale"},
	{64, "Storm"},
	{73, "Violent Storm"},
}

// DescribeWeather renders a weather code; unknown codes keep the original
// code visible.
func DescribeWeather(code any) string {
	if id, ok := payload.Int(code); ok {
		if name, ok := weatherNames[id]; ok {
			return name
		}
	}
	return fmt.Sprintf("Unknown (%v)", code)
}

// WindCategory names a wind speed in mph.
func WindCategory(mph float64) string {
	for _, band := range windScale {
		if mph < band.limit {
			return band.label
		}
	}
	return "Hurricane"
}

// Interpret parses the raw environment block of a match object.
func Interpret(raw payload.Object) Reading {
	if raw == nil {
		raw = payload.Object{}
	}
	reading := Reading{Raw: raw}

	reading.Weather = raw["weather"]
	if code, ok := payload.Int(raw["weather"]); ok {
		reading.Weather = code
	}
	reading.WeatherDescription = DescribeWeather(reading.Weather)

	reading.Temperature = raw["temperature"]
	reading.TemperatureValue, reading.TemperatureUnit = parseReading(raw["temperature"])

	reading.Wind = raw["wind"]
	reading.WindValue, reading.WindUnit = parseReading(raw["wind"])

	reading.Pressure = raw["pressure"]
	reading.PressureValue, reading.PressureUnit = parseReading(raw["pressure"])

	reading.Humidity = raw["humidity"]
	reading.HumidityValue, reading.HumidityUnit = parseReading(raw["humidity"])

	reading.WindDescription = WindCategory(reading.windMPH())
	return reading
}

func parseReading(v any) (*float64, string) {
	value, unit, ok := payload.NumberUnit(v)
	if !ok {
		return nil, ""
	}
	return &value, unit
}

// windMPH normalizes the wind reading to mph; m/s sources are converted,
// everything else is taken at face value.
func (r Reading) windMPH() float64 {
	if r.WindValue == nil {
		return 0
	}
	if strings.Contains(strings.ToLower(payload.String(r.Wind)), "m/s") {
		return *r.WindValue * 2.237
	}
	return *r.WindValue
}

// FormatConditions renders a reading for match detail displays. Celsius
// temperatures show a one-decimal Fahrenheit conversion.
func FormatConditions(r Reading) string {
	if len(r.Raw) == 0 {
		return "No environment data available"
	}

	tempDisplay := "Unknown"
	if r.TemperatureValue != nil {
		if (r.TemperatureUnit == "" || strings.Contains(r.TemperatureUnit, "C")) && *r.TemperatureValue != 0 {
			fahrenheit := *r.TemperatureValue*9/5 + 32
			tempDisplay = fmt.Sprintf("%.1f°F", fahrenheit)
		} else {
			tempDisplay = fmt.Sprintf("%v%s", *r.TemperatureValue, r.TemperatureUnit)
		}
	}

	windDisplay := r.WindDescription
	if r.WindValue != nil {
		windDisplay = fmt.Sprintf("%s, %.1f mph", r.WindDescription, r.windMPH())
	}

	return fmt.Sprintf("Weather: %s\nTemperature: %s\nWind: %s", r.WeatherDescription, tempDisplay, windDisplay)
}

// Report is the operator-facing rendering of an environment block, with
// every field collapsed to a display string.
type Report struct {
	Weather     string `json:"weather"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
	Humidity    string `json:"humidity"`
}

// BuildReport renders the raw environment block for reports. Unlike
// FormatConditions the Fahrenheit conversion rounds to the nearest whole
// degree here.
func BuildReport(raw payload.Object) Report {
	if raw == nil {
		raw = payload.Object{}
	}
	report := Report{Weather: DescribeWeather(raw["weather"])}

	if celsius, ok := payload.Float(raw["temperature"]); ok {
		fahrenheit := int(math.Round(celsius*9/5 + 32))
		report.Temperature = fmt.Sprintf("%v°C (%d°F)", payload.String(raw["temperature"]), fahrenheit)
	} else if s := payload.String(raw["temperature"]); s != "" {
		report.Temperature = s
	} else {
		report.Temperature = "Unknown"
	}

	if mph, ok := payload.Float(raw["wind"]); ok {
		report.Wind = fmt.Sprintf("%v mph (%s)", mph, WindCategory(mph))
	} else if s := payload.String(raw["wind"]); s != "" {
		report.Wind = s
	} else {
		report.Wind = "Unknown"
	}

	if s := payload.String(raw["pressure"]); s != "" {
		report.Pressure = s + " hPa"
	} else {
		report.Pressure = "Unknown hPa"
	}
	if s := payload.String(raw["humidity"]); s != "" {
		report.Humidity = s + "%"
	} else {
		report.Humidity = "Unknown%"
	}
	return report
}

// OneLine collapses a reading into a single display sentence.
func OneLine(r Reading) string {
	if len(r.Raw) == 0 {
		return "No environment data available"
	}
	parts := []string{r.WeatherDescription}
	if r.Temperature != nil {
		parts = append(parts, payload.String(r.Temperature))
	}
	parts = append(parts, "Wind: "+r.WindDescription)
	return strings.Join(parts, ", ")
}
