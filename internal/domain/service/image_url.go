package service

// StudyImageURLBuilder turns a raw stored image reference into a fully
// qualified display URL. Pure transform; callers skip it when the reference
// is absent so a missing image stays absent in responses.
type StudyImageURLBuilder interface {
	StudyImageURL(ref string) string
}
