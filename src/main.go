package main

import (
	"context"

	appconfig "github.com/BielosX/wombat/pokepedia/src/config"
	"github.com/BielosX/wombat/pokepedia/src/exporter"
	"github.com/BielosX/wombat/pokepedia/src/pokeapi"
	"github.com/BielosX/wombat/pokepedia/src/pokepedia"
	"github.com/BielosX/wombat/pokepedia/src/s3"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger
var repository *pokepedia.Repository
var moveExporter *exporter.Exporter

type LookupRequest struct {
	Name string `json:"name"`
}

type MoveResult struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	RawName     string   `json:"rawName"`
	Description string   `json:"description"`
	Summary     string   `json:"summary"`
	Lines       []string `json:"lines"`
}

type PokemonTyping struct {
	Generation string `json:"generation"`
	Types      string `json:"types"`
}

type PokemonResult struct {
	PokedexId  int             `json:"pokedexId"`
	Name       string          `json:"name"`
	Generation string          `json:"generation"`
	Types      []PokemonTyping `json:"types"`
}

type ExportRequest struct {
	Moves []string `json:"moves"`
}

func handleMove(ctx context.Context, request LookupRequest) (*MoveResult, error) {
	sugar.Infof("Starting Move Handler, name: %s", request.Name)
	move, err := repository.SearchMove(ctx, request.Name)
	if err != nil {
		sugar.Errorf("Failed to search Move %q: %s", request.Name, err)
		return nil, err
	}
	return &MoveResult{
		Id:          move.Id(),
		Name:        move.Name(),
		RawName:     move.RawName(),
		Description: move.Description(),
		Summary:     move.String(),
		Lines:       move.DisplayLines(),
	}, nil
}

func handlePokemon(ctx context.Context, request LookupRequest) (*PokemonResult, error) {
	sugar.Infof("Starting Pokemon Handler, name: %s", request.Name)
	pokemon, err := repository.SearchPokemon(ctx, request.Name)
	if err != nil {
		sugar.Errorf("Failed to search Pokemon %q: %s", request.Name, err)
		return nil, err
	}
	var typings []PokemonTyping
	for _, generation := range pokemon.Generations() {
		typings = append(typings, PokemonTyping{
			Generation: generation.String(),
			Types:      pokepedia.TypesString(pokemon.ElementTypesIn(generation)),
		})
	}
	return &PokemonResult{
		PokedexId:  pokemon.PokedexId(),
		Name:       pokemon.Name(),
		Generation: pokemon.IntroducedIn().String(),
		Types:      typings,
	}, nil
}

func handleExport(ctx context.Context, request ExportRequest) (*exporter.Result, error) {
	sugar.Infof("Starting Export Handler, moves: %d", len(request.Moves))
	return moveExporter.Export(ctx, request.Moves)
}

func syncLogger() {
	_ = sugar.Sync()
}

func main() {
	logger, _ := zap.NewDevelopment(zap.AddStacktrace(zap.FatalLevel))
	sugar = logger.Sugar()
	defer syncLogger()
	cfg, err := appconfig.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %s", err)
	}
	client := pokeapi.NewClient(sugar, cfg.PokeApiBaseUrl, cfg.PokeApiTimeout)
	repository = pokepedia.NewRepository(client, sugar, cfg.Language)
	switch cfg.Handler {
	case "move":
		lambda.Start(handleMove)
	case "pokemon":
		lambda.Start(handlePokemon)
	case "exporter":
		awsCfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(cfg.Region))
		if err != nil {
			sugar.Fatal("Failed to load SDK config")
		}
		moveExporter = exporter.New(repository, s3.NewClient(awsCfg), cfg.BucketName, sugar)
		lambda.Start(handleExport)
	default:
		sugar.Fatalf("Unknown Handler %s", cfg.Handler)
	}
}
