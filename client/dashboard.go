package client

import (
	"context"

	"imovel-hub/internal/entity"
)

// DashboardCounts summarizes the collections shown on the admin home
// screen. There is no server-side paging contract, so the full
// collections are fetched and counted here.
type DashboardCounts struct {
	Imoveis         int `json:"imoveis"`
	Destaques       int `json:"destaques"`
	DestaquesAtivos int `json:"destaquesAtivos"`
	Posts           int `json:"posts"`
	PostsPublicados int `json:"postsPublicados"`
}

func (c *Client) Dashboard(ctx context.Context) (*DashboardCounts, error) {
	imoveis, err := c.ListImoveis(ctx, ImovelListFilter{})
	if err != nil {
		return nil, err
	}
	destaques, err := c.ListDestaquesAdmin(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := c.ListPosts(ctx, PostListFilter{})
	if err != nil {
		return nil, err
	}

	counts := &DashboardCounts{
		Imoveis:   len(imoveis),
		Destaques: len(destaques),
		Posts:     len(posts),
	}
	for _, d := range destaques {
		if d.Ativo {
			counts.DestaquesAtivos++
		}
	}
	for _, p := range posts {
		if p.Status == entity.StatusPublicado {
			counts.PostsPublicados++
		}
	}
	return counts, nil
}
