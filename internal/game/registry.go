package game

import "fmt"

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Scrap Chassis":     ScrapChassis,
	"Hauler Frame":      HaulerFrame,
	"Recon Shell":       ReconShell,
	"Junk Cell":         JunkCell,
	"Twin Core":         TwinCore,
	"Heavy Dynamo":      HeavyDynamo,
	"Spark Bank":        SparkBank,
	"Nail Driver":       NailDriver,
	"Scrap Cannon":      ScrapCannon,
	"Arc Welder":        ArcWelder,
	"Plasma Lance":      PlasmaLance,
	"Flamethrower":      Flamethrower,
	"Cryo Sprayer":      CryoSprayer,
	"Rust Thrower":      RustThrower,
	"Junk Mortar":       JunkMortar,
	"Overdrive Blade":   OverdriveBlade,
	"Ghost Projector":   GhostProjector,
	"Slag Fuser":        SlagFuser,
	"Bolt-On Plates":    BoltOnPlates,
	"Deflector Coil":    DeflectorCoil,
	"Adaptive Carapace": AdaptiveCarapace,
	"Mirror Hull":       MirrorHull,
	"Salvage Planner":   SalvagePlanner,
	"Reflex Core":       ReflexCore,
	"Siphon Matrix":     SiphonMatrix,
	"Overclock Daemon":  OverclockDaemon,
	"Lock-On Module":    LockOnModule,
	"Surge Bank":        SurgeBank,
	"Flux Jar":          FluxJar,
	"Die Splitter":      DieSplitter,
	"Overcharge Rig":    OverchargeRig,
	"Gyro Tumbler":      GyroTumbler,
	"Card Feeder":       CardFeeder,
	"Salvage Treads":    SalvageTreads,
	"Magnet Crawler":    MagnetCrawler,
}

// LookupCard looks up a card by name and returns a new definition.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}
