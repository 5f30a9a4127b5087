package animation

import "fyne.io/fyne/v2"

// FlashSpec defines the two icons alternated while flashing.
type FlashSpec struct {
	Alert fyne.Resource
	Rest  fyne.Resource
}
