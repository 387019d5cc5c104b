package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salariedindividual/retirement-calculator/internal/domain"
)

// GenerateReport renders results in the requested format and writes a
// timestamped report file, returning the written filename(s).
func GenerateReport(results *domain.PlanComparison, format string) (string, error) {
	name := NormalizeFormatName(format)
	if name == "all" {
		written := make([]string, 0, 3)
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, JSONFormatter{}} {
			filename, err := WriteFormatted(f, results, extensionFor(f.Name()))
			if err != nil {
				return strings.Join(written, ", "), err
			}
			written = append(written, filename)
		}
		return strings.Join(written, ", "), nil
	}
	f := GetFormatterByName(name)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
			ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "),
			strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, results, extensionFor(name))
}

// PrintReport renders results in the requested format straight to stdout.
func PrintReport(results *domain.PlanComparison, format string) error {
	f := GetFormatterByName(NormalizeFormatName(format))
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
			ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "),
			strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	default:
		return "txt"
	}
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
