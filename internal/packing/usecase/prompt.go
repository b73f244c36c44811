package usecase

import "fmt"

const packingTemperature = 0.4

func buildPackingPrompt(destination string) string {
	return fmt.Sprintf(`You are a travel assistant. Suggest a detailed packing list for a trip to %s.
Include categories like:
- Clothing (considering local climate & culture)
- Footwear
- Accessories
- Electronics
- Documents
- Toiletries & health items
- Miscellaneous travel essentials

Return only the items as bullet points without category headings.`, destination)
}
