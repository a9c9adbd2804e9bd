// Package templates carries the built-in device catalog used to prefill new
// tickets: known brands, their models and each model's common issues.
package templates

import "teknikservis/backend/internal/domain"

var deviceTemplates = []domain.DeviceTemplate{
	// Apple
	{Brand: "Apple", Model: "iPhone 17 Pro Max", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Kamera Lens", "Face ID Arızası", "Portsuz Şarj"}},
	{Brand: "Apple", Model: "iPhone 17 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Face ID Arızası"}},
	{Brand: "Apple", Model: "iPhone 17", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Kamera"}},
	{Brand: "Apple", Model: "iPhone 16 Pro Max", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Face ID Arızası", "Titanyum Çerçeve", "Capture Button"}},
	{Brand: "Apple", Model: "iPhone 16 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Face ID Arızası", "Capture Button"}},
	{Brand: "Apple", Model: "iPhone 16", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Apple", Model: "iPhone 15 Pro Max", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Kamera Lens", "Face ID Arızası"}},
	{Brand: "Apple", Model: "iPhone 15 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Face ID Arızası", "Hoparlör"}},
	{Brand: "Apple", Model: "iPhone 15", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Kamera"}},
	{Brand: "Apple", Model: "iPhone 14 Pro Max", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Face ID Arızası"}},
	{Brand: "Apple", Model: "iPhone 14 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Face ID Arızası", "Hoparlör"}},
	{Brand: "Apple", Model: "iPhone 14", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Apple", Model: "iPhone 13 Pro Max", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Arka Cam", "Face ID Arızası"}},
	{Brand: "Apple", Model: "iPhone 13 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Face ID Arızası"}},
	{Brand: "Apple", Model: "iPhone 13", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Hoparlör"}},
	{Brand: "Apple", Model: "iPhone 12 Pro Max", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Face ID Arızası"}},
	{Brand: "Apple", Model: "iPhone 12", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Apple", Model: "iPhone 11", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Face ID Arızası", "Şarj Soketi", "Hoparlör"}},
	{Brand: "Apple", Model: "iPhone SE 2022", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Touch ID Arızası"}},
	// Samsung
	{Brand: "Samsung", Model: "Galaxy S25 Ultra", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "S-Pen Arızası", "Kamera", "Titanyum Gövde"}},
	{Brand: "Samsung", Model: "Galaxy S25+", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Samsung", Model: "Galaxy S25", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Samsung", Model: "Galaxy S24 Ultra", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "S-Pen Arızası", "Kamera", "Arka Cam"}},
	{Brand: "Samsung", Model: "Galaxy S24", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Samsung", Model: "Galaxy S23 Ultra", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "S-Pen Arızası", "Kamera"}},
	{Brand: "Samsung", Model: "Galaxy S23", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Samsung", Model: "Galaxy S22 Ultra", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "S-Pen Arızası"}},
	{Brand: "Samsung", Model: "Galaxy S21 FE", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Ghost Touch"}},
	{Brand: "Samsung", Model: "Galaxy A54", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Kamera"}},
	{Brand: "Samsung", Model: "Galaxy A34", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Hoparlör"}},
	{Brand: "Samsung", Model: "Galaxy A14", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Samsung", Model: "Galaxy Z Fold 5", CommonIssues: []string{"İç Ekran Değişimi", "Menteşe Sorunu", "Dış Ekran", "Pil"}},
	{Brand: "Samsung", Model: "Galaxy Z Flip 5", CommonIssues: []string{"İç Ekran Değişimi", "Menteşe Sorunu", "Dış Ekran"}},
	// Xiaomi
	{Brand: "Xiaomi", Model: "Xiaomi 14 Ultra", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Leica Kamera Lens", "Arka Kapak"}},
	{Brand: "Xiaomi", Model: "Xiaomi 14", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Xiaomi", Model: "Redmi Note 13 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Kamera"}},
	{Brand: "Xiaomi", Model: "Redmi Note 12", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Xiaomi", Model: "Redmi 13C", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Hoparlör"}},
	{Brand: "Xiaomi", Model: "Poco X6 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	// Huawei
	{Brand: "Huawei", Model: "P40 Pro", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Parmak İzi Sensörü"}},
	{Brand: "Huawei", Model: "P30 Lite", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Hoparlör"}},
	// Oppo
	{Brand: "Oppo", Model: "A78", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi"}},
	{Brand: "Oppo", Model: "Reno 10", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Kamera"}},
	// Diğer
	{Brand: "Diğer", Model: "Tablet", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Şarj Soketi", "Hoparlör", "Kamera"}},
	{Brand: "Diğer", Model: "Akıllı Saat", CommonIssues: []string{"Ekran Değişimi", "Pil Değişimi", "Kordon", "Sensör"}},
}

// All returns the full catalog.
func All() []domain.DeviceTemplate {
	return deviceTemplates
}

// Brands lists distinct brands in catalog order.
func Brands() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range deviceTemplates {
		if !seen[t.Brand] {
			seen[t.Brand] = true
			out = append(out, t.Brand)
		}
	}
	return out
}

// ModelsForBrand lists the catalog models of one brand.
func ModelsForBrand(brand string) []string {
	var out []string
	for _, t := range deviceTemplates {
		if t.Brand == brand {
			out = append(out, t.Model)
		}
	}
	return out
}

// CommonIssues returns the known issues of one brand+model, empty when the
// device is not in the catalog.
func CommonIssues(brand string, model string) []string {
	for _, t := range deviceTemplates {
		if t.Brand == brand && t.Model == model {
			return t.CommonIssues
		}
	}
	return []string{}
}
