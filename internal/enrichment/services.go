// internal/enrichment/services.go
package enrichment

import "dental-site/internal/models"

// HighlightCount is how many services the page surfaces near the top.
const HighlightCount = 4

// DefaultServices is the fixed service catalog. Upstream never supplies
// services, so every profile carries this list.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			Title:       "معاینه و جرم‌گیری",
			Description: "معاینه دوره‌ای، جرم‌گیری و بروساژ برای حفظ سلامت لثه و دندان.",
			Icon:        "fa-tooth",
			Items:       []string{"معاینه کامل", "جرم‌گیری", "فلوراید تراپی"},
		},
		{
			Title:       "ایمپلنت دندان",
			Description: "جایگزینی دندان‌های از دست رفته با ایمپلنت‌های استاندارد و ماندگار.",
			Icon:        "fa-screwdriver-wrench",
		},
		{
			Title:       "ارتودنسی",
			Description: "اصلاح نامرتبی دندان‌ها با براکت‌های ثابت و الاینرهای شفاف.",
			Icon:        "fa-teeth",
			Items:       []string{"ارتودنسی ثابت", "الاینر شفاف"},
		},
		{
			Title:       "زیبایی و لمینت",
			Description: "طراحی لبخند، لمینت سرامیکی و کامپوزیت ونیر.",
			Icon:        "fa-face-smile",
			Items:       []string{"لمینت سرامیکی", "کامپوزیت ونیر", "بلیچینگ"},
		},
		{
			Title:       "درمان ریشه",
			Description: "عصب‌کشی با دستگاه‌های روتاری و حداقل درد.",
			Icon:        "fa-syringe",
		},
		{
			Title:       "دندانپزشکی کودکان",
			Description: "مراقبت از دندان‌های شیری و آموزش بهداشت به کودکان در محیطی آرام.",
			Icon:        "fa-child",
		},
	}
}

// HighlightServices takes the first n entries of catalog and, if it is short,
// pads from defaults, skipping titles already taken.
func HighlightServices(catalog, defaults []models.Service, n int) []models.Service {
	if n <= 0 {
		return []models.Service{}
	}

	out := make([]models.Service, 0, n)
	seen := make(map[string]bool, n)
	for _, s := range catalog {
		if len(out) == n {
			return out
		}
		out = append(out, s)
		seen[s.Title] = true
	}
	for _, s := range defaults {
		if len(out) == n {
			break
		}
		if seen[s.Title] {
			continue
		}
		out = append(out, s)
		seen[s.Title] = true
	}
	return out
}
