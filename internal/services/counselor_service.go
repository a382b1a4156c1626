package services

import (
	"errors"
	"sort"

	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/scoring"
	"gorm.io/gorm"
)

var (
	ErrCounselorNotFound     = errors.New("counselor not found")
	ErrCounselorSelfAssign   = errors.New("counselor cannot be self")
	ErrCounselorUpdateFailed = errors.New("update counselor failed")
	ErrMemberNotFound        = errors.New("member not found")
	ErrViewerForbidden       = errors.New("viewer forbidden")
)

type CounselorUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	SetCounselor(userID uint, counselorID *uint) error
	ListByCounselor(counselorID uint) ([]models.User, error)
}

type MemberAnalyzer interface {
	AnalyzeUser(userID uint) (scoring.Analysis, error)
}

// MemberSummary is the row a counselor sees for each assigned member.
type MemberSummary struct {
	MemberID              uint           `json:"memberId"`
	Email                 string         `json:"email"`
	DisplayName           string         `json:"displayName"`
	EntriesAnalyzed       int            `json:"entriesAnalyzed"`
	OverallScore          float64        `json:"overallScore"`
	DepressionLevel       string         `json:"depressionLevel"`
	AnxietyLevel          string         `json:"anxietyLevel"`
	StressLevel           string         `json:"stressLevel"`
	Trends                scoring.Trends `json:"trends"`
	NeedsProfessionalHelp bool           `json:"needsProfessionalHelp"`
	CrisisRisk            bool           `json:"crisisRisk"`
}

type CounselorService struct {
	users    CounselorUserRepository
	analyzer MemberAnalyzer
}

func NewCounselorService(users CounselorUserRepository, analyzer MemberAnalyzer) *CounselorService {
	return &CounselorService{users: users, analyzer: analyzer}
}

// AssignCounselor links the member to the counselor account with the given email.
func (service *CounselorService) AssignCounselor(member *models.User, counselorEmailRaw string) (models.User, error) {
	email := NormalizeAccountEmail(counselorEmailRaw)
	if email == "" {
		return models.User{}, ErrCounselorNotFound
	}

	counselor, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrCounselorNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if !IsCounselorUser(&counselor) {
		return models.User{}, ErrCounselorNotFound
	}
	if counselor.ID == member.ID {
		return models.User{}, ErrCounselorSelfAssign
	}

	if err := service.users.SetCounselor(member.ID, &counselor.ID); err != nil {
		return models.User{}, ErrCounselorUpdateFailed
	}
	member.CounselorID = &counselor.ID
	return counselor, nil
}

func (service *CounselorService) RevokeCounselor(member *models.User) error {
	if err := service.users.SetCounselor(member.ID, nil); err != nil {
		return ErrCounselorUpdateFailed
	}
	member.CounselorID = nil
	return nil
}

// ListMemberSummaries returns the counselor's members, most urgent first:
// crisis risk, then professional-help flag, then lowest overall score.
func (service *CounselorService) ListMemberSummaries(counselor *models.User) ([]MemberSummary, error) {
	if !IsCounselorUser(counselor) {
		return nil, ErrViewerForbidden
	}

	members, err := service.users.ListByCounselor(counselor.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]MemberSummary, 0, len(members))
	for _, member := range members {
		analysis, err := service.analyzer.AnalyzeUser(member.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarizeMember(member, analysis))
	}

	SortMemberSummaries(summaries)
	return summaries, nil
}

func SortMemberSummaries(summaries []MemberSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		left, right := summaries[i], summaries[j]
		if left.CrisisRisk != right.CrisisRisk {
			return left.CrisisRisk
		}
		if left.NeedsProfessionalHelp != right.NeedsProfessionalHelp {
			return left.NeedsProfessionalHelp
		}
		if left.OverallScore != right.OverallScore {
			return left.OverallScore < right.OverallScore
		}
		return left.MemberID < right.MemberID
	})
}

func summarizeMember(member models.User, analysis scoring.Analysis) MemberSummary {
	return MemberSummary{
		MemberID:              member.ID,
		Email:                 member.Email,
		DisplayName:           member.DisplayName,
		EntriesAnalyzed:       analysis.EntriesAnalyzed,
		OverallScore:          analysis.OverallScore,
		DepressionLevel:       analysis.Depression.Level,
		AnxietyLevel:          analysis.Anxiety.Level,
		StressLevel:           analysis.Stress.Level,
		Trends:                analysis.Trends,
		NeedsProfessionalHelp: analysis.NeedsProfessionalHelp,
		CrisisRisk:            analysis.CrisisRisk,
	}
}

func (service *CounselorService) MemberAnalysis(viewer *models.User, memberID uint) (scoring.Analysis, error) {
	member, err := service.users.FindByID(memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scoring.Analysis{}, ErrMemberNotFound
	}
	if err != nil {
		return scoring.Analysis{}, err
	}
	if !CanViewMemberData(viewer, &member) {
		return scoring.Analysis{}, ErrViewerForbidden
	}
	return service.analyzer.AnalyzeUser(member.ID)
}
