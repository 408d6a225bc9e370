// Package catalog holds the static exercise and meal tables the generators
// consult. All data lives in package-level literals; lookups are total
// functions (fallback + modulo wrap) and hand out copies, never shared
// references.
package catalog

import (
	"fmt"

	"github.com/fitforge/backend/internal/domain"
)

// Common rest times in seconds.
const (
	restShort  = 30
	restMedium = 60
	restLong   = 90
	restHeavy  = 120
)

// ---------------------------------------------------------------------------
// Bodyweight strength
// ---------------------------------------------------------------------------

var pushUps = domain.ExerciseTemplate{
	Name: "Push-ups", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 12, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Start in a high plank with hands under shoulders",
		"Lower your chest until it nearly touches the floor",
		"Press back up keeping your body in a straight line",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Perform on knees or against a wall",
		domain.LevelAdvanced: "Elevate feet or add a weight vest",
	},
}

var inclinePushUps = domain.ExerciseTemplate{
	Name: "Incline push-ups", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 10, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Place hands on a bench or sturdy elevated surface",
		"Lower your chest to the edge, then press back up",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use a higher surface such as a countertop",
		domain.LevelAdvanced: "Move to standard push-ups",
	},
}

var bodyweightSquats = domain.ExerciseTemplate{
	Name: "Bodyweight squats", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 15, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Stand with feet shoulder-width apart",
		"Sit your hips back and down until thighs are parallel to the floor",
		"Drive through your heels to stand back up",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Squat to a chair and stand back up",
		domain.LevelAdvanced: "Add a pause at the bottom or jump squats",
	},
}

var walkingLunges = domain.ExerciseTemplate{
	Name: "Walking lunges", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 10, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Step forward and lower your back knee toward the floor",
		"Push through the front heel and step into the next lunge",
		"Keep your torso upright throughout",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Perform stationary lunges holding a support",
		domain.LevelAdvanced: "Hold dumbbells at your sides",
	},
}

var gluteBridges = domain.ExerciseTemplate{
	Name: "Glute bridges", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 15, RestTimeSeconds: restShort,
	Instructions: []string{
		"Lie on your back with knees bent and feet flat",
		"Squeeze your glutes and lift hips until your body forms a line",
		"Lower with control",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Reduce range of motion",
		domain.LevelAdvanced: "Perform single-leg bridges",
	},
}

var plank = domain.ExerciseTemplate{
	Name: "Plank", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 1, RestTimeSeconds: restShort,
	Instructions: []string{
		"Support yourself on forearms and toes",
		"Keep hips level and core braced for 30-45 seconds",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Hold from the knees",
		domain.LevelAdvanced: "Lift one leg or add shoulder taps",
	},
}

var supermans = domain.ExerciseTemplate{
	Name: "Supermans", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 12, RestTimeSeconds: restShort,
	Instructions: []string{
		"Lie face down with arms extended overhead",
		"Lift arms, chest, and legs off the floor simultaneously",
		"Hold briefly, then lower",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Lift arms and legs alternately",
		domain.LevelAdvanced: "Hold each rep for three seconds",
	},
}

var birdDog = domain.ExerciseTemplate{
	Name: "Bird dog", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 10, RestTimeSeconds: restShort,
	Instructions: []string{
		"Start on hands and knees with a neutral spine",
		"Extend opposite arm and leg without rotating your hips",
		"Return and switch sides",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Extend only the leg",
		domain.LevelAdvanced: "Pause for three seconds per rep",
	},
}

var calfRaises = domain.ExerciseTemplate{
	Name: "Calf raises", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 20, RestTimeSeconds: restShort,
	Instructions: []string{
		"Stand tall, rise onto the balls of your feet",
		"Lower slowly below parallel if on a step",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Hold a wall for balance",
		domain.LevelAdvanced: "Perform single-leg with added weight",
	},
}

// ---------------------------------------------------------------------------
// Dumbbell / machine strength
// ---------------------------------------------------------------------------

var gobletSquats = domain.ExerciseTemplate{
	Name: "Goblet squats", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 10, RestTimeSeconds: restLong,
	Instructions: []string{
		"Hold a dumbbell vertically against your chest",
		"Squat until elbows touch the inside of your knees",
		"Drive up through the heels",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use a light weight or no weight",
		domain.LevelAdvanced: "Slow the descent to three seconds",
	},
}

var dumbbellBenchPress = domain.ExerciseTemplate{
	Name: "Dumbbell bench press", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 10, RestTimeSeconds: restLong,
	Instructions: []string{
		"Lie on a bench with a dumbbell in each hand at chest level",
		"Press the weights up until arms are extended",
		"Lower with control to the start",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use the floor instead of a bench",
		domain.LevelAdvanced: "Add a pause at the chest",
	},
}

var dumbbellRows = domain.ExerciseTemplate{
	Name: "Single-arm dumbbell rows", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 10, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Support one hand on a bench, back flat",
		"Row the dumbbell to your hip, squeezing the shoulder blade",
		"Lower slowly and repeat per side",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use a lighter weight and higher reps",
		domain.LevelAdvanced: "Add a pause at the top",
	},
}

var dumbbellShoulderPress = domain.ExerciseTemplate{
	Name: "Dumbbell shoulder press", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 10, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Sit or stand with dumbbells at shoulder height",
		"Press overhead until arms are extended",
		"Lower under control",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Press one arm at a time seated",
		domain.LevelAdvanced: "Stand and press both together",
	},
}

var romanianDeadlifts = domain.ExerciseTemplate{
	Name: "Romanian deadlifts", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 10, RestTimeSeconds: restLong,
	Instructions: []string{
		"Hold the weight in front of your thighs, knees slightly bent",
		"Hinge at the hips, sliding the weight down your legs",
		"Squeeze glutes to return to standing",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use dumbbells with reduced range",
		domain.LevelAdvanced: "Use a barbell and slow the eccentric",
	},
}

var hipThrusts = domain.ExerciseTemplate{
	Name: "Hip thrusts", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 12, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Rest your upper back on a bench, weight over your hips",
		"Drive hips up until your torso is parallel to the floor",
		"Pause at the top, then lower",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Perform bodyweight glute bridges",
		domain.LevelAdvanced: "Add a barbell across the hips",
	},
}

var latPulldowns = domain.ExerciseTemplate{
	Name: "Lat pulldowns", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 10, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Grip the bar slightly wider than shoulder width",
		"Pull the bar to your upper chest, driving elbows down",
		"Control the bar back up",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use a resistance band if no machine",
		domain.LevelAdvanced: "Progress toward weighted pull-ups",
	},
}

var bicepCurls = domain.ExerciseTemplate{
	Name: "Dumbbell bicep curls", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 12, RestTimeSeconds: restShort,
	Instructions: []string{
		"Hold dumbbells at your sides, palms forward",
		"Curl to shoulder height without swinging",
		"Lower slowly",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Alternate arms",
		domain.LevelAdvanced: "Add a pause at the midpoint",
	},
}

var tricepDips = domain.ExerciseTemplate{
	Name: "Tricep dips", Type: domain.ExerciseStrength,
	Sets: 3, Reps: 12, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Grip the edge of a bench behind you, legs extended",
		"Lower until elbows reach ninety degrees",
		"Press back up without shrugging",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Bend knees to reduce load",
		domain.LevelAdvanced: "Use parallel bars with added weight",
	},
}

// ---------------------------------------------------------------------------
// Barbell strength
// ---------------------------------------------------------------------------

var barbellBackSquats = domain.ExerciseTemplate{
	Name: "Barbell back squats", Type: domain.ExerciseStrength,
	Sets: 5, Reps: 5, RestTimeSeconds: restHeavy,
	Instructions: []string{
		"Rest the bar on your upper traps, feet shoulder width",
		"Squat to at least parallel keeping your chest up",
		"Drive up hard through mid-foot",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Start with goblet squats",
		domain.LevelAdvanced: "Add pause reps at the bottom",
	},
}

var barbellBenchPress = domain.ExerciseTemplate{
	Name: "Barbell bench press", Type: domain.ExerciseStrength,
	Sets: 5, Reps: 5, RestTimeSeconds: restHeavy,
	Instructions: []string{
		"Lie with eyes under the bar, feet planted",
		"Lower the bar to mid-chest with elbows at roughly 45 degrees",
		"Press to lockout",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use dumbbells or an empty bar",
		domain.LevelAdvanced: "Add chains or pause reps",
	},
}

var deadlifts = domain.ExerciseTemplate{
	Name: "Deadlifts", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 5, RestTimeSeconds: restHeavy,
	Instructions: []string{
		"Stand with mid-foot under the bar, grip just outside your legs",
		"Brace, flatten your back, and push the floor away",
		"Lock out with hips and knees together, then lower under control",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Pull from blocks or use a trap bar",
		domain.LevelAdvanced: "Add deficit or paused reps",
	},
}

var overheadPress = domain.ExerciseTemplate{
	Name: "Overhead press", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 6, RestTimeSeconds: restHeavy,
	Instructions: []string{
		"Grip the bar at shoulder width, elbows under wrists",
		"Press overhead, moving your head through at lockout",
		"Lower to the collarbone with control",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use dumbbells seated",
		domain.LevelAdvanced: "Add push-press singles after the sets",
	},
}

var barbellRows = domain.ExerciseTemplate{
	Name: "Barbell rows", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 8, RestTimeSeconds: restLong,
	Instructions: []string{
		"Hinge to roughly 45 degrees holding the bar at arm's length",
		"Row the bar to your lower ribs",
		"Lower without letting your torso rise",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use chest-supported dumbbell rows",
		domain.LevelAdvanced: "Pause each rep at the ribs",
	},
}

var pullUps = domain.ExerciseTemplate{
	Name: "Pull-ups", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 8, RestTimeSeconds: restLong,
	Instructions: []string{
		"Hang from the bar with an overhand grip",
		"Pull until your chin clears the bar",
		"Lower to a full hang each rep",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use a band or assisted machine",
		domain.LevelAdvanced: "Add weight with a dip belt",
	},
}

var frontSquats = domain.ExerciseTemplate{
	Name: "Front squats", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 6, RestTimeSeconds: restHeavy,
	Instructions: []string{
		"Rack the bar across your front delts, elbows high",
		"Squat keeping your torso as upright as possible",
		"Drive up leading with the elbows",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Hold two dumbbells at the shoulders",
		domain.LevelAdvanced: "Add a three-second pause",
	},
}

var weightedDips = domain.ExerciseTemplate{
	Name: "Weighted dips", Type: domain.ExerciseStrength,
	Sets: 4, Reps: 8, RestTimeSeconds: restLong,
	Instructions: []string{
		"Support yourself on parallel bars with a slight forward lean",
		"Lower until shoulders drop below elbows",
		"Press to lockout",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Perform bench dips",
		domain.LevelAdvanced: "Increase the added load",
	},
}

// ---------------------------------------------------------------------------
// Cardio
// ---------------------------------------------------------------------------

var briskWalking = domain.ExerciseTemplate{
	Name: "Brisk walking", Type: domain.ExerciseCardio,
	DurationSeconds: 1800, RestTimeSeconds: 0,
	Instructions: []string{
		"Walk at a pace where talking is possible but singing is not",
		"Keep an upright posture and swing your arms naturally",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Shorten to 20 minutes",
		domain.LevelAdvanced: "Add hills or a weighted backpack",
	},
}

var jogging = domain.ExerciseTemplate{
	Name: "Jogging", Type: domain.ExerciseCardio,
	DurationSeconds: 1500, RestTimeSeconds: 0,
	Instructions: []string{
		"Run at a conversational pace",
		"Land mid-foot with a slight forward lean",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Alternate one minute jogging, one walking",
		domain.LevelAdvanced: "Extend to 40 minutes",
	},
}

var steadyStateCycling = domain.ExerciseTemplate{
	Name: "Steady-state cycling", Type: domain.ExerciseCardio,
	DurationSeconds: 1800, RestTimeSeconds: 0,
	Instructions: []string{
		"Cycle at a steady moderate effort",
		"Keep cadence around 80-90 rpm",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Reduce resistance and duration",
		domain.LevelAdvanced: "Add three 2-minute surges",
	},
}

var rowingMachine = domain.ExerciseTemplate{
	Name: "Rowing machine", Type: domain.ExerciseCardio,
	DurationSeconds: 1200, RestTimeSeconds: 0,
	Instructions: []string{
		"Drive with the legs first, then lean back and pull",
		"Return arms, body, then legs in sequence",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Row 500m intervals with rest",
		domain.LevelAdvanced: "Hold a target split for the full piece",
	},
}

var jumpRope = domain.ExerciseTemplate{
	Name: "Jump rope", Type: domain.ExerciseCardio,
	DurationSeconds: 600, RestTimeSeconds: restShort,
	Instructions: []string{
		"Jump just high enough to clear the rope",
		"Stay on the balls of your feet, wrists doing the work",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Jump without a rope to learn the rhythm",
		domain.LevelAdvanced: "Add double-unders",
	},
}

var hiitIntervals = domain.ExerciseTemplate{
	Name: "HIIT intervals", Type: domain.ExerciseCardio,
	DurationSeconds: 900, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Alternate 30 seconds of hard effort with 60 seconds easy",
		"Use a bike, rower, or running",
		"Stop if form breaks down",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use 20 seconds on, 90 seconds off",
		domain.LevelAdvanced: "Move to 40 on, 40 off",
	},
}

var hillSprints = domain.ExerciseTemplate{
	Name: "Hill sprints", Type: domain.ExerciseCardio,
	DurationSeconds: 900, RestTimeSeconds: restHeavy,
	Instructions: []string{
		"Sprint 10-15 seconds up a moderate hill",
		"Walk back down as recovery",
		"Repeat 6-10 times",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Stride at 80% effort instead of sprinting",
		domain.LevelAdvanced: "Use a steeper hill or add reps",
	},
}

var stairClimber = domain.ExerciseTemplate{
	Name: "Stair climber", Type: domain.ExerciseCardio,
	DurationSeconds: 1200, RestTimeSeconds: 0,
	Instructions: []string{
		"Step at a steady pace without leaning on the rails",
		"Drive through the whole foot each step",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Slow the step rate",
		domain.LevelAdvanced: "Skip a step on alternate minutes",
	},
}

var tempoRun = domain.ExerciseTemplate{
	Name: "Tempo run", Type: domain.ExerciseCardio,
	DurationSeconds: 1800, RestTimeSeconds: 0,
	Instructions: []string{
		"Warm up 10 minutes easy",
		"Run 20 minutes at a comfortably hard pace",
		"Cool down easy",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Cut the tempo block to 10 minutes",
		domain.LevelAdvanced: "Extend the tempo block to 30 minutes",
	},
}

var burpees = domain.ExerciseTemplate{
	Name: "Burpees", Type: domain.ExerciseCardio,
	DurationSeconds: 480, RestTimeSeconds: restMedium,
	Instructions: []string{
		"Squat, kick back to a plank, and perform a push-up",
		"Jump your feet back in and leap upward",
		"Repeat at a steady rhythm",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Step back instead of jumping, skip the push-up",
		domain.LevelAdvanced: "Add a tuck jump",
	},
}

var mountainClimbers = domain.ExerciseTemplate{
	Name: "Mountain climbers", Type: domain.ExerciseCardio,
	DurationSeconds: 300, RestTimeSeconds: restShort,
	Instructions: []string{
		"From a high plank, drive knees alternately to your chest",
		"Keep hips low and core tight",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Slow the pace, stepping instead of driving",
		domain.LevelAdvanced: "Increase speed for 30-second bursts",
	},
}

var jumpingJacks = domain.ExerciseTemplate{
	Name: "Jumping jacks", Type: domain.ExerciseCardio,
	DurationSeconds: 300, RestTimeSeconds: restShort,
	Instructions: []string{
		"Jump feet out while raising arms overhead",
		"Jump back to the start and repeat rhythmically",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Step side to side instead of jumping",
		domain.LevelAdvanced: "Speed up or add a squat between reps",
	},
}

// ---------------------------------------------------------------------------
// Flexibility
// ---------------------------------------------------------------------------

var dynamicWarmup = domain.ExerciseTemplate{
	Name: "Dynamic warm-up", Type: domain.ExerciseFlexibility,
	DurationSeconds: 420, RestTimeSeconds: 0,
	Instructions: []string{
		"Leg swings, arm circles, and hip openers",
		"Move through a full range without bouncing",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Hold a support during leg swings",
		domain.LevelAdvanced: "Add walking lunges with rotation",
	},
}

var fullBodyStretch = domain.ExerciseTemplate{
	Name: "Full-body stretch", Type: domain.ExerciseFlexibility,
	DurationSeconds: 600, RestTimeSeconds: 0,
	Instructions: []string{
		"Hold each major muscle group stretch for 30 seconds",
		"Breathe slowly, never stretch into sharp pain",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use shorter 15-second holds",
		domain.LevelAdvanced: "Extend holds to 60 seconds",
	},
}

var hipFlexorStretch = domain.ExerciseTemplate{
	Name: "Hip flexor stretch", Type: domain.ExerciseFlexibility,
	DurationSeconds: 300, RestTimeSeconds: 0,
	Instructions: []string{
		"Kneel in a lunge position, back knee on the floor",
		"Tuck your pelvis and shift forward until you feel the stretch",
		"Hold 30 seconds per side",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Place a cushion under the knee",
		domain.LevelAdvanced: "Raise the back foot onto a bench",
	},
}

var catCow = domain.ExerciseTemplate{
	Name: "Cat-cow", Type: domain.ExerciseFlexibility,
	DurationSeconds: 240, RestTimeSeconds: 0,
	Instructions: []string{
		"On hands and knees, alternate arching and rounding your spine",
		"Move with your breath, one cycle per breath",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Reduce range of motion",
		domain.LevelAdvanced: "Add thoracic rotations",
	},
}

var yogaFlow = domain.ExerciseTemplate{
	Name: "Yoga flow", Type: domain.ExerciseFlexibility,
	DurationSeconds: 900, RestTimeSeconds: 0,
	Instructions: []string{
		"Cycle through downward dog, lunge, and warrior poses",
		"Hold each pose for three to five breaths",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Use blocks for support",
		domain.LevelAdvanced: "Add balance poses between cycles",
	},
}

var foamRolling = domain.ExerciseTemplate{
	Name: "Foam rolling", Type: domain.ExerciseFlexibility,
	DurationSeconds: 600, RestTimeSeconds: 0,
	Instructions: []string{
		"Roll quads, hamstrings, calves, and upper back",
		"Spend extra time on tender spots, rolling slowly",
	},
	Modifications: map[domain.FitnessLevel]string{
		domain.LevelBeginner: "Reduce pressure by supporting body weight",
		domain.LevelAdvanced: "Use a firmer roller or lacrosse ball",
	},
}

// exerciseTable is the 3-level static table: goal -> fitness level -> day
// variants. Each variant is the ordered exercise list for one workout day;
// the Nth workout day of the week uses variant N modulo the variant count.
var exerciseTable = map[domain.Goal]map[domain.FitnessLevel][][]domain.ExerciseTemplate{
	domain.GoalFatLoss: {
		domain.LevelBeginner: {
			{briskWalking, bodyweightSquats, plank},
			{jumpingJacks, inclinePushUps, gluteBridges},
			{briskWalking, walkingLunges, mountainClimbers},
		},
		domain.LevelIntermediate: {
			{hiitIntervals, gobletSquats, pushUps},
			{stairClimber, dumbbellRows, plank},
			{jumpRope, walkingLunges, burpees},
		},
		domain.LevelAdvanced: {
			{hiitIntervals, barbellBackSquats, pullUps},
			{hillSprints, romanianDeadlifts, weightedDips},
			{tempoRun, hipThrusts, burpees},
		},
	},
	domain.GoalMuscleBuilding: {
		domain.LevelBeginner: {
			{pushUps, bodyweightSquats, gluteBridges},
			{inclinePushUps, walkingLunges, supermans},
			{bodyweightSquats, tricepDips, calfRaises},
		},
		domain.LevelIntermediate: {
			{dumbbellBenchPress, dumbbellRows, gobletSquats},
			{dumbbellShoulderPress, latPulldowns, romanianDeadlifts},
			{hipThrusts, bicepCurls, tricepDips},
		},
		domain.LevelAdvanced: {
			{barbellBenchPress, barbellRows, frontSquats},
			{barbellBackSquats, overheadPress, pullUps},
			{deadlifts, weightedDips, hipThrusts},
		},
	},
	domain.GoalMaintenance: {
		domain.LevelBeginner: {
			{briskWalking, bodyweightSquats, fullBodyStretch},
			{inclinePushUps, gluteBridges, catCow},
			{jumpingJacks, birdDog, plank},
		},
		domain.LevelIntermediate: {
			{jogging, gobletSquats, pushUps},
			{steadyStateCycling, dumbbellRows, plank},
			{dumbbellShoulderPress, walkingLunges, yogaFlow},
		},
		domain.LevelAdvanced: {
			{rowingMachine, barbellBackSquats, pullUps},
			{tempoRun, dumbbellBenchPress, hipThrusts},
			{hiitIntervals, romanianDeadlifts, foamRolling},
		},
	},
	domain.GoalStrength: {
		domain.LevelBeginner: {
			{bodyweightSquats, pushUps, plank},
			{walkingLunges, inclinePushUps, supermans},
			{gluteBridges, tricepDips, birdDog},
		},
		domain.LevelIntermediate: {
			{gobletSquats, dumbbellBenchPress, dumbbellRows},
			{romanianDeadlifts, dumbbellShoulderPress, latPulldowns},
			{hipThrusts, pullUps, plank},
		},
		domain.LevelAdvanced: {
			{barbellBackSquats, barbellBenchPress, barbellRows},
			{deadlifts, overheadPress, pullUps},
			{frontSquats, weightedDips, hipThrusts},
		},
	},
	domain.GoalEndurance: {
		domain.LevelBeginner: {
			{briskWalking, bodyweightSquats, fullBodyStretch},
			{jumpingJacks, gluteBridges, catCow},
			{briskWalking, mountainClimbers, hipFlexorStretch},
		},
		domain.LevelIntermediate: {
			{jogging, walkingLunges, plank},
			{steadyStateCycling, pushUps, dynamicWarmup},
			{rowingMachine, gobletSquats, yogaFlow},
		},
		domain.LevelAdvanced: {
			{tempoRun, barbellRows, plank},
			{hillSprints, romanianDeadlifts, foamRolling},
			{rowingMachine, pullUps, hiitIntervals},
		},
	},
}

// allGoals and allLevels enumerate the closed enums for validation.
var allGoals = []domain.Goal{
	domain.GoalFatLoss, domain.GoalMuscleBuilding, domain.GoalMaintenance,
	domain.GoalStrength, domain.GoalEndurance,
}

var allLevels = []domain.FitnessLevel{
	domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced,
}

// ExerciseStore serves the static exercise template table.
type ExerciseStore struct{}

// NewExerciseStore creates the exercise catalog.
func NewExerciseStore() *ExerciseStore {
	return &ExerciseStore{}
}

// Exercises returns the exercise list for the Nth workout day of a week for
// the given goal and level. Unknown goals resolve to the default goal,
// unknown levels to beginner, and variantIndex wraps modulo the authored
// variant count, so the result is never empty.
func (s *ExerciseStore) Exercises(goal domain.Goal, level domain.FitnessLevel, variantIndex int) []domain.ExerciseTemplate {
	levels, ok := exerciseTable[goal.Normalize()]
	if !ok {
		levels = exerciseTable[domain.DefaultGoal]
	}

	variants, ok := levels[level.Normalize()]
	if !ok {
		variants = levels[domain.DefaultFitnessLevel]
	}

	if variantIndex < 0 {
		variantIndex = 0
	}
	return copyExercises(variants[variantIndex%len(variants)])
}

// Validate checks the table exhaustively: every goal/level pair must be
// present with at least one variant, and every template must be well-formed.
// Run from the composition root so authoring mistakes fail at startup, not
// mid-request.
func (s *ExerciseStore) Validate() error {
	for _, goal := range allGoals {
		levels, ok := exerciseTable[goal]
		if !ok {
			return fmt.Errorf("%w: missing goal %q", domain.ErrCatalogInvalid, goal)
		}
		for _, level := range allLevels {
			variants, ok := levels[level]
			if !ok {
				return fmt.Errorf("%w: missing level %q for goal %q", domain.ErrCatalogInvalid, level, goal)
			}
			if len(variants) == 0 {
				return fmt.Errorf("%w: no variants for %q/%q", domain.ErrCatalogInvalid, goal, level)
			}
			for i, variant := range variants {
				if len(variant) == 0 {
					return fmt.Errorf("%w: empty variant %d for %q/%q", domain.ErrCatalogInvalid, i, goal, level)
				}
				for _, ex := range variant {
					if err := validateTemplate(ex); err != nil {
						return fmt.Errorf("%w: variant %d for %q/%q: %v", domain.ErrCatalogInvalid, i, goal, level, err)
					}
				}
			}
		}
	}
	return nil
}

// validateTemplate checks a single template: named, typed, and prescribed
// either as sets x reps or as a duration, never both.
func validateTemplate(ex domain.ExerciseTemplate) error {
	if ex.Name == "" {
		return fmt.Errorf("unnamed exercise")
	}
	switch ex.Type {
	case domain.ExerciseStrength:
		if ex.Sets <= 0 || ex.Reps <= 0 {
			return fmt.Errorf("%s: strength exercise needs sets and reps", ex.Name)
		}
		if ex.DurationSeconds != 0 {
			return fmt.Errorf("%s: strength exercise must not carry a duration", ex.Name)
		}
	case domain.ExerciseCardio, domain.ExerciseFlexibility:
		if ex.DurationSeconds <= 0 {
			return fmt.Errorf("%s: timed exercise needs a duration", ex.Name)
		}
		if ex.Sets != 0 || ex.Reps != 0 {
			return fmt.Errorf("%s: timed exercise must not carry sets or reps", ex.Name)
		}
	default:
		return fmt.Errorf("%s: unknown exercise type %q", ex.Name, ex.Type)
	}
	if len(ex.Instructions) == 0 {
		return fmt.Errorf("%s: no instructions", ex.Name)
	}
	return nil
}

// copyExercises deep-copies a variant so callers cannot mutate the shared
// table through returned slices and maps.
func copyExercises(src []domain.ExerciseTemplate) []domain.ExerciseTemplate {
	out := make([]domain.ExerciseTemplate, len(src))
	for i, ex := range src {
		out[i] = ex
		out[i].Instructions = append([]string(nil), ex.Instructions...)
		if ex.Modifications != nil {
			mods := make(map[domain.FitnessLevel]string, len(ex.Modifications))
			for k, v := range ex.Modifications {
				mods[k] = v
			}
			out[i].Modifications = mods
		}
	}
	return out
}
