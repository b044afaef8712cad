package blackjack

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// holeCard is the index of the dealer card hidden during the player's turn
const holeCard = 0

// Game is a single-player game of blackjack against the house
// A Game is not safe for concurrent use. Every command runs to completion or
// fails without changing state.
type Game struct {
	options Options
	logger  logrus.FieldLogger
	rng     rng.Generator
	ledger  *Ledger

	phase          Phase
	outcome        Outcome
	deck           *deck.Deck
	playerHand     deck.Hand
	dealerHand     deck.Hand
	dealerRevealed bool

	roundID     string
	logMessages []*LogMessage
}

// NewGame returns a new game waiting for a bet
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.StartingChips <= 0 {
		return nil, errors.New("starting chips must be > 0")
	}

	gen := options.Generator
	if gen == nil {
		gen = rng.Crypto{}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Game{
		options: options,
		logger:  logger,
		rng:     gen,
		ledger:  NewLedger(options.StartingChips),
		phase:   PhaseAwaitingBet,
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// UpdatePendingBet stores the raw bet the player has typed
func (g *Game) UpdatePendingBet(raw string) error {
	return g.ledger.UpdatePendingBet(raw)
}

// ConfirmBet places the pending bet and deals a new round
func (g *Game) ConfirmBet() error {
	if !g.canStartRound() {
		return &PhaseError{Action: ActionConfirmBet, Phase: g.phase}
	}

	amount, err := g.ledger.ConfirmBet()
	if err != nil {
		return err
	}

	g.addLogMessage(nil, "Bet ${%d}", amount)
	return g.Deal()
}

// Deal shuffles a fresh deck and deals two cards each to the player and the dealer
func (g *Game) Deal() error {
	if g.ledger.CurrentBet() <= 0 {
		return ErrNoBetPlaced
	}

	if !g.canStartRound() {
		return &PhaseError{Action: ActionDeal, Phase: g.phase}
	}

	d := deck.New()
	d.Shuffle(g.rng)

	g.roundID = uuid.New().String()
	g.deck = d
	g.playerHand = make(deck.Hand, 0, 5)
	g.dealerHand = make(deck.Hand, 0, 5)
	g.dealerRevealed = false
	g.outcome = OutcomeNone

	g.log().WithFields(logrus.Fields{
		"bet":      g.ledger.CurrentBet(),
		"deckHash": d.HashCode(),
	}).Debug("dealing new round")

	for _, hand := range []*deck.Hand{&g.playerHand, &g.playerHand, &g.dealerHand, &g.dealerHand} {
		if err := g.drawTo(hand); err != nil {
			return g.abortRound(err)
		}
	}

	g.phase = PhasePlayerTurn
	g.addLogMessage(g.playerHand.Clone(), "Player dealt %d", HandValue(g.playerHand))
	return nil
}

// Hit draws a card for the player
// If the player busts, the dealer wins and the round is settled.
func (g *Game) Hit() error {
	if err := g.checkPlayerTurn(ActionHit); err != nil {
		return err
	}

	if err := g.drawTo(&g.playerHand); err != nil {
		return g.abortRound(err)
	}

	card := g.playerHand[len(g.playerHand)-1]
	score := HandValue(g.playerHand)
	g.addLogMessage([]*deck.Card{card}, "Player hits for %d", score)

	if score > Blackjack {
		g.dealerRevealed = true
		return g.settle(OutcomeDealerWin)
	}

	return nil
}

// Stand ends the player's turn and plays the dealer's hand
// The dealer draws while under 17, then the hands are compared and the round is settled.
func (g *Game) Stand() error {
	if err := g.checkPlayerTurn(ActionStand); err != nil {
		return err
	}

	g.phase = PhaseDealerTurn
	g.dealerRevealed = true
	g.addLogMessage(g.dealerHand.Clone(), "Dealer reveals %d", HandValue(g.dealerHand))

	for HandValue(g.dealerHand) < dealerStandsOn {
		if err := g.drawTo(&g.dealerHand); err != nil {
			return g.abortRound(err)
		}

		card := g.dealerHand[len(g.dealerHand)-1]
		g.addLogMessage([]*deck.Card{card}, "Dealer draws for %d", HandValue(g.dealerHand))
	}

	return g.settle(compareHands(HandValue(g.playerHand), HandValue(g.dealerHand)))
}

// ResetGame restores the starting stake and waits for a new bet
func (g *Game) ResetGame() {
	g.log().Debug("resetting game")

	g.ledger.Reset()
	g.phase = PhaseAwaitingBet
	g.outcome = OutcomeNone
	g.deck = nil
	g.playerHand = nil
	g.dealerHand = nil
	g.dealerRevealed = false
	g.roundID = ""
	g.logMessages = nil
}

func (g *Game) canStartRound() bool {
	return g.phase == PhaseAwaitingBet || g.phase == PhaseSettled
}

func (g *Game) checkPlayerTurn(action Action) error {
	if g.phase == PhaseAwaitingBet {
		return ErrNoBetPlaced
	}

	if g.phase != PhasePlayerTurn {
		return &PhaseError{Action: action, Phase: g.phase}
	}

	if g.ledger.CurrentBet() <= 0 {
		return ErrNoBetPlaced
	}

	return nil
}

func (g *Game) drawTo(hand *deck.Hand) error {
	card, err := g.deck.Draw()
	if err != nil {
		if err == deck.ErrEndOfDeck {
			return ErrEmptyDeck
		}

		return err
	}

	hand.AddCard(card)
	return nil
}

func (g *Game) settle(outcome Outcome) error {
	bet := g.ledger.CurrentBet()
	payout, err := g.ledger.Settle(outcome)
	if err != nil {
		return err
	}

	g.outcome = outcome
	g.phase = PhaseSettled

	g.log().WithFields(logrus.Fields{
		"bet":     bet,
		"payout":  payout,
		"outcome": string(outcome),
		"player":  g.playerHand.String(),
		"dealer":  g.dealerHand.String(),
	}).Debug("round settled")

	switch outcome {
	case OutcomePlayerWin:
		g.addLogMessage(nil, "Player wins ${%d}", payout-bet)
	case OutcomeDealerWin:
		g.addLogMessage(nil, "Dealer wins ${%d}", bet)
	case OutcomePush:
		g.addLogMessage(nil, "Push, ${%d} returned", payout)
	}

	return nil
}

// abortRound ends a round that cannot continue and returns the stake
func (g *Game) abortRound(cause error) error {
	refund := g.ledger.Refund()
	g.log().WithError(cause).WithField("refund", refund).Error("aborting round")

	g.phase = PhaseAwaitingBet
	g.outcome = OutcomeNone
	g.deck = nil
	g.playerHand = nil
	g.dealerHand = nil
	g.dealerRevealed = false
	g.addLogMessage(nil, "Round aborted, ${%d} returned", refund)

	return fmt.Errorf("round aborted: %w", cause)
}

func (g *Game) log() logrus.FieldLogger {
	return g.logger.WithFields(logrus.Fields{
		"round": g.roundID,
		"phase": g.phase,
	})
}

// PlayerHand returns the player's cards
func (g *Game) PlayerHand() deck.Hand {
	return g.playerHand.Clone()
}

// DealerHand returns the dealer's cards, including a concealed one
// Use State() for the player's view of the hand.
func (g *Game) DealerHand() deck.Hand {
	return g.dealerHand.Clone()
}

// PlayerScore returns the score of the player's hand
func (g *Game) PlayerScore() int {
	return HandValue(g.playerHand)
}

// DealerScore returns the score of the dealer's hand, or UnknownScore while a card is concealed
func (g *Game) DealerScore() int {
	if g.DealerConcealed() {
		return UnknownScore
	}

	return HandValue(g.dealerHand)
}

// DealerConcealed returns true while the dealer's first card is hidden from the player
func (g *Game) DealerConcealed() bool {
	return !g.dealerRevealed && len(g.dealerHand) > holeCard
}

// ChipBalance returns the chips not at stake
func (g *Game) ChipBalance() int {
	return g.ledger.ChipBalance()
}

// CurrentBet returns the active wager
func (g *Game) CurrentBet() int {
	return g.ledger.CurrentBet()
}

// PendingBetInput returns the raw bet input
func (g *Game) PendingBetInput() string {
	return g.ledger.PendingBetInput()
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Outcome returns the outcome of the settled round, or OutcomeNone
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// RoundID returns the identifier of the current round
func (g *Game) RoundID() string {
	return g.roundID
}

// CardsLeft returns the number of cards left in the deck
func (g *Game) CardsLeft() int {
	if g.deck == nil {
		return 0
	}

	return g.deck.CardsLeft()
}
