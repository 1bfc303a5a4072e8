package jobrec

import (
	"fmt"

	"resume-intel/internal/experience"
	"resume-intel/internal/knowledge"
	"resume-intel/internal/skills"
)

// Roadmap is a phased plan for reaching a target role.
type Roadmap struct {
	CurrentLevel string        `json:"current_level"`
	TargetRole   string        `json:"target_role"`
	TargetLevel  string        `json:"target_level"`
	Steps        []RoadmapStep `json:"steps"`
}

// RoadmapStep is one phase of the plan.
type RoadmapStep struct {
	Phase    string   `json:"phase"`
	Actions  []string `json:"actions"`
	Timeline string   `json:"timeline"`
	Outcome  string   `json:"outcome"`
}

// BuildRoadmap lays out the path from the candidate's current level to the
// target role: close critical gaps first, then build proof, then prepare
// for interviews.
func BuildRoadmap(skillProfile *skills.Profile, expProfile *experience.Profile, targetJobID string) (*Roadmap, error) {
	role, ok := knowledge.Roles[targetJobID]
	if !ok {
		return nil, ErrUnknownRole
	}

	gap, err := AnalyzeGap(skillProfile, targetJobID)
	if err != nil {
		return nil, err
	}

	roadmap := &Roadmap{
		CurrentLevel: expProfile.CareerLevel,
		TargetRole:   role.Title,
		TargetLevel:  role.ExperienceLevel,
	}

	if len(gap.CriticalMissingSkills) > 0 {
		top := gap.CriticalMissingSkills
		if len(top) > 2 {
			top = top[:2]
		}
		actions := make([]string, 0, len(top))
		for _, skill := range top {
			actions = append(actions, fmt.Sprintf("Master %s", skill))
		}
		roadmap.Steps = append(roadmap.Steps, RoadmapStep{
			Phase:    "Immediate Priority",
			Actions:  actions,
			Timeline: "1-2 months",
			Outcome:  "Core skill gaps filled",
		})
	}

	roadmap.Steps = append(roadmap.Steps,
		RoadmapStep{
			Phase: "Portfolio Building",
			Actions: []string{
				"Build 2-3 projects showcasing target skills",
				"Contribute to open source",
				"Create case studies",
			},
			Timeline: "1-2 months",
			Outcome:  "Demonstrable experience",
		},
		RoadmapStep{
			Phase: "Interview Prep",
			Actions: []string{
				"Practice coding interviews",
				"Prepare system design",
				"Research target companies",
			},
			Timeline: "2-4 weeks",
			Outcome:  "Interview-ready",
		},
	)

	return roadmap, nil
}
