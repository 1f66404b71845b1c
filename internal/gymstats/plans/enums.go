package plans

// Goal is the training goal of an exercise plan.
type Goal string

const (
	GoalMuscleGain     Goal = "muscle_gain"
	GoalFatLoss        Goal = "fat_loss"
	GoalEndurance      Goal = "endurance"
	GoalFlexibility    Goal = "flexibility"
	GoalGeneralFitness Goal = "general_fitness"
)

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalMuscleGain,
		GoalFatLoss,
		GoalEndurance,
		GoalFlexibility,
		GoalGeneralFitness:
		return true
	default:
		return false
	}
}

// BodyPart is the trained body part of an exercise set.
type BodyPart string

const (
	BodyPartChest     BodyPart = "chest"
	BodyPartBack      BodyPart = "back"
	BodyPartLegs      BodyPart = "legs"
	BodyPartShoulders BodyPart = "shoulders"
	BodyPartArms      BodyPart = "arms"
	BodyPartCore      BodyPart = "core"
	BodyPartFullBody  BodyPart = "full_body"
)

func (bp BodyPart) String() string {
	return string(bp)
}

func (bp BodyPart) IsValid() bool {
	switch bp {
	case BodyPartChest,
		BodyPartBack,
		BodyPartLegs,
		BodyPartShoulders,
		BodyPartArms,
		BodyPartCore,
		BodyPartFullBody:
		return true
	default:
		return false
	}
}

// JointType tells whether a movement involves one or several joints.
type JointType string

const (
	JointTypeSingle JointType = "single_joint"
	JointTypeMulti  JointType = "multi_joint"
)

func (jt JointType) String() string {
	return string(jt)
}

func (jt JointType) IsValid() bool {
	return jt == JointTypeSingle || jt == JointTypeMulti
}
