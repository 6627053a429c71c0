// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/workspace.go

import (
	"context"
	"fmt"
	"net/url"
)

// GetTeams fetches the workspaces the token can access.
func (c *Client) GetTeams(ctx context.Context) ([]Team, error) {
	var resp struct {
		Teams []Team `json:"teams"`
	}
	if err := c.get(ctx, "/team", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// GetSpaces fetches the spaces of a workspace.
func (c *Client) GetSpaces(ctx context.Context, teamID string) ([]Space, error) {
	var resp struct {
		Spaces []Space `json:"spaces"`
	}
	if err := c.get(ctx, fmt.Sprintf("/team/%s/space", url.PathEscape(teamID)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

// GetFolders fetches the folders of a space, including their lists.
func (c *Client) GetFolders(ctx context.Context, spaceID string) ([]Folder, error) {
	var resp struct {
		Folders []Folder `json:"folders"`
	}
	if err := c.get(ctx, fmt.Sprintf("/space/%s/folder", url.PathEscape(spaceID)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

// GetFolderlessLists fetches the lists of a space that live outside folders.
func (c *Client) GetFolderlessLists(ctx context.Context, spaceID string) ([]List, error) {
	var resp struct {
		Lists []List `json:"lists"`
	}
	if err := c.get(ctx, fmt.Sprintf("/space/%s/list", url.PathEscape(spaceID)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// GetList fetches a single list.
func (c *Client) GetList(ctx context.Context, listID string) (*List, error) {
	var list List
	if err := c.get(ctx, fmt.Sprintf("/list/%s", url.PathEscape(listID)), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetListMembers fetches the members with access to a list.
func (c *Client) GetListMembers(ctx context.Context, listID string) ([]User, error) {
	var resp struct {
		Members []User `json:"members"`
	}
	if err := c.get(ctx, fmt.Sprintf("/list/%s/member", url.PathEscape(listID)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// GetAccessibleCustomFields fetches the custom-field definitions of a list.
func (c *Client) GetAccessibleCustomFields(ctx context.Context, listID string) ([]CustomField, error) {
	var resp struct {
		Fields []CustomField `json:"fields"`
	}
	if err := c.get(ctx, fmt.Sprintf("/list/%s/field", url.PathEscape(listID)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Fields, nil
}
