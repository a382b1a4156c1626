package services

import "github.com/terraincognita07/mindguard/internal/scoring"

type EntryWindowReader interface {
	RecentWindow(userID uint, size int) ([]scoring.Entry, error)
}

type AnalysisService struct {
	entries    EntryWindowReader
	windowSize int
}

func NewAnalysisService(entries EntryWindowReader, windowSize int) *AnalysisService {
	if windowSize <= 0 {
		windowSize = scoring.DefaultWindowSize
	}
	return &AnalysisService{entries: entries, windowSize: windowSize}
}

func (service *AnalysisService) WindowSize() int {
	return service.windowSize
}

func (service *AnalysisService) AnalyzeUser(userID uint) (scoring.Analysis, error) {
	recent, err := service.entries.RecentWindow(userID, service.windowSize)
	if err != nil {
		return scoring.Analysis{}, err
	}
	return AnalyzeEntries(recent, service.windowSize), nil
}

// AnalyzeEntries collapses entries to one per day and scores the trailing window.
func AnalyzeEntries(entries []scoring.Entry, windowSize int) scoring.Analysis {
	journal := scoring.NewJournal(entries...)
	return scoring.Analyze(journal.Window(windowSize))
}
