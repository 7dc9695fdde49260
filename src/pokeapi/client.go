package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
	"github.com/BielosX/wombat/pokepedia/src/utils"
	"go.uber.org/zap"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2/"

type Client struct {
	baseUrl string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

func NewClient(sugar *zap.SugaredLogger, baseUrl string, timeout time.Duration) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  &http.Client{Timeout: timeout},
		sugar:   sugar,
	}
}

// getAndDecode reports every failure, including non-2xx responses, as a transport error.
func (c *Client) getAndDecode(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.Transport(err, "build request for %s", endpoint)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Transport(err, "get %s", endpoint)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.Transport(fmt.Errorf("unexpected status %s", resp.Status), "get %s", endpoint)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(target); err != nil {
		return apperrors.Transport(err, "decode response from %s", endpoint)
	}
	return nil
}

func (c *Client) FetchMove(ctx context.Context, name string) (*MoveResponse, error) {
	name = utils.NormalizeName(name)
	if name == "" {
		return nil, apperrors.Validationf("move name is empty")
	}
	c.sugar.Infof("Fetching Move %s", name)
	var move MoveResponse
	if err := c.getAndDecode(ctx, fmt.Sprintf("%s/move/%s/", c.baseUrl, url.PathEscape(name)), &move); err != nil {
		return nil, err
	}
	return &move, nil
}

type indexedMove struct {
	index int
	move  *MoveResponse
}

func (c *Client) fetchMove(ctx context.Context,
	index int,
	name string,
	errChan chan<- error,
	resultChan chan<- indexedMove,
	waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()
	move, err := c.FetchMove(ctx, name)
	if err != nil {
		errChan <- err
		return
	}
	resultChan <- indexedMove{index: index, move: move}
}

// FetchMoves fetches all names concurrently. Results keep the order of names.
func (c *Client) FetchMoves(ctx context.Context, names []string) ([]*MoveResponse, error) {
	var waitGroup sync.WaitGroup
	errChan := make(chan error, len(names))
	resultChan := make(chan indexedMove, len(names))
	for i, name := range names {
		waitGroup.Add(1)
		go c.fetchMove(ctx, i, name, errChan, resultChan, &waitGroup)
	}
	waitGroup.Wait()
	close(errChan)
	close(resultChan)
	var errs []error
	for e := range errChan {
		if e != nil {
			errs = append(errs, e)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	results := make([]*MoveResponse, len(names))
	for entry := range resultChan {
		results[entry.index] = entry.move
	}
	return results, nil
}

func (c *Client) FetchPokemon(ctx context.Context, name string) (*PokemonResponse, error) {
	name = utils.NormalizeName(name)
	if name == "" {
		return nil, apperrors.Validationf("pokemon name is empty")
	}
	c.sugar.Infof("Fetching Pokemon %s", name)
	var pokemon PokemonResponse
	if err := c.getAndDecode(ctx, fmt.Sprintf("%s/pokemon/%s/", c.baseUrl, url.PathEscape(name)), &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

func (c *Client) FetchSpecies(ctx context.Context, species NamedResource) (*PokemonSpecies, error) {
	c.sugar.Infof("Fetching Pokemon Species %s", species.Name)
	var pokemonSpecies PokemonSpecies
	if err := c.getAndDecode(ctx, species.Url, &pokemonSpecies); err != nil {
		return nil, err
	}
	return &pokemonSpecies, nil
}
