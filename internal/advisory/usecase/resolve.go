package usecase

// resolveEntity finds the knowledge-base key referenced by the message
// within the partition implied by intent. Empty string means "intent known,
// entity unknown"; callers answer with a generic intent-level response.
func (uc *implUseCase) resolveEntity(intent Intent, message string) string {
	switch intent {
	case IntentCrop:
		return uc.kb.FindCropKey(message)
	case IntentPest:
		return uc.kb.FindPestKey(message)
	case IntentDisease:
		return uc.kb.FindDiseaseKey(message)
	case IntentScheme:
		return uc.kb.FindSchemeKey(message)
	default:
		return ""
	}
}
