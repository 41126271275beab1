/* ==================================================================================== *\
   setup.go

   Wires a random domain graph, per-object transition matrices, and the
   full overlay pipeline together for the CLI sub-commands. Graph
   generation and transition-matrix synthesis are external collaborators
   of the simulation core; this file is the harness supplying concrete
   (if simple) instances of both, the same role anaximander_driver.go
   plays for its own simulation core.
\* ==================================================================================== */
package main

import (
	"log"
	"os"

	surveillance "github.com/anaximander-labs/surveillance-overlay"
)

type simulation struct {
	rng        *surveillance.RNG
	domains    *surveillance.DomainGraph
	dispatcher *surveillance.MobilityDispatcher
	objects    []*surveillance.Object
	build      *surveillance.BuildResult
	controller *surveillance.SurveillanceController
	targets    map[surveillance.ObjectID]bool
}

func buildSimulation(cfg surveillance.Config) *simulation {
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	rng := surveillance.NewRNG(cfg.Seed)
	domains := randomDomainGraph(rng, cfg.DomainSize, cfg.MinWeight, cfg.MaxWeight)
	if !domains.Connected() {
		log.Fatal("[surveillance-overlay]: generated domain graph is not connected")
	}

	dispatcher := surveillance.NewMobilityDispatcher(domains)

	objects := make([]*surveillance.Object, cfg.ObjectsCount)
	for i := 0; i < cfg.ObjectsCount; i++ {
		matrix, err := surveillance.NewTransitionMatrix(rng, cfg.DomainSize, cfg.MinTransitionGroupSize, cfg.TransitionGroup, cfg.TransitionProbability)
		if err != nil {
			log.Fatal(err)
		}
		start := matrix.Domains()[rng.Intn(len(matrix.Domains()))]
		speed := rng.NormalPositive(cfg.ObjectSpeedExp, cfg.ObjectSpeedSigma)

		id := surveillance.ObjectID(i)
		obj := surveillance.NewObject(id, matrix, start, speed, cfg.TimeStep, dispatcher)
		gen := surveillance.NewTaskGenerator(rng, cfg.MovingDegree, cfg.MaxAwait)
		dispatcher.Register(id, gen, matrix, start)
		objects[i] = obj
	}

	builder, err := surveillance.NewOverlayBuilder(domains, cfg.Alpha, rng, 4)
	if err != nil {
		log.Fatal(err)
	}
	build, err := builder.Build(nil)
	if err != nil {
		log.Fatal(err)
	}

	controller := surveillance.NewSurveillanceController(domains, build)
	controller.SetLogger(surveillance.NewLogger(os.Stderr, "[surveillance-overlay] "))

	targets := make(map[surveillance.ObjectID]bool, cfg.SurveillanceTargetCount)
	perm := rng.Perm(cfg.ObjectsCount)
	for i := 0; i < cfg.SurveillanceTargetCount; i++ {
		targets[surveillance.ObjectID(perm[i])] = true
	}
	controller.SetTargets(targets)

	return &simulation{
		rng:        rng,
		domains:    domains,
		dispatcher: dispatcher,
		objects:    objects,
		build:      build,
		controller: controller,
		targets:    targets,
	}
}

func (s *simulation) loop(reference *surveillance.ReferenceSystem) *surveillance.TickLoop {
	return surveillance.NewTickLoop(s.objects, s.controller, reference)
}

// resetForInference returns the mobility layer to t = 0 and flips the
// controller into inference mode.
func (s *simulation) resetForInference(cfg surveillance.Config) {
	s.dispatcher.Reset()
	for _, o := range s.objects {
		start := o.Matrix.Domains()[0]
		o.ResetState(start)
	}
	s.controller.SetTrainingMode(false)
}

// randomDomainGraph builds a connected weighted graph: a random
// spanning tree over `size` nodes (guaranteeing connectivity) plus a
// handful of extra random edges for realistic branching factor.
func randomDomainGraph(rng *surveillance.RNG, size int, minWeight, maxWeight float64) *surveillance.DomainGraph {
	g := surveillance.NewDomainGraph(size)
	if size <= 1 {
		return g
	}

	order := rng.Perm(size)
	for i := 1; i < size; i++ {
		parent := order[rng.Intn(i)]
		child := order[i]
		weight := minWeight + rng.Float64()*(maxWeight-minWeight)
		if err := g.AddEdge(surveillance.DomainID(parent), surveillance.DomainID(child), weight); err != nil {
			log.Fatal(err)
		}
	}

	extra := size / 2
	for i := 0; i < extra; i++ {
		u := surveillance.DomainID(rng.Intn(size))
		v := surveillance.DomainID(rng.Intn(size))
		if u == v {
			continue
		}
		if _, exists := g.Weight(u, v); exists {
			continue
		}
		weight := minWeight + rng.Float64()*(maxWeight-minWeight)
		if err := g.AddEdge(u, v, weight); err != nil {
			log.Fatal(err)
		}
	}

	return g
}
