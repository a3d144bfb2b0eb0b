package records

// SubDirectory is the folder a document is filed under. The backend stores
// the Russian label itself.
type SubDirectory string

const (
	Diagnostics     SubDirectory = "Диагностика"
	Anamnesis       SubDirectory = "Анамнез"
	WorkPlan        SubDirectory = "План работы"
	Comments        SubDirectory = "Комментарии специалистов"
	PhotosAndVideos SubDirectory = "Фотографии и Видео"
)

// SubDirectories lists every folder in display order.
var SubDirectories = []SubDirectory{Diagnostics, Anamnesis, WorkPlan, Comments, PhotosAndVideos}

// ParseSubDirectory maps a stored label back to its folder.
func ParseSubDirectory(s string) (SubDirectory, bool) {
	for _, d := range SubDirectories {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

func (d SubDirectory) String() string { return string(d) }
