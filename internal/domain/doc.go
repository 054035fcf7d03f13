// Package domain defines the core catalog entities (decks, cards,
// categories, types) and their validation rules. Entities are plain
// data: they are decoded once from the on-disk catalog sources at
// startup and never mutated afterwards.
package domain
