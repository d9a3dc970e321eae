// Package input converts raw user input into process records: form maps are
// decoded with structology and resource vectors are lexed with parsly.
package input
